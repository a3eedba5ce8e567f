// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nhlattice/evolve"
	"github.com/katalvlaran/nhlattice/lattice"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Flags share these names; environment variables use
// the NHLATTICE_ prefix with dashes and dots as underscores (NHLATTICE_MAX_TIME).
const (
	keyConfig     = "config"
	keyLogLevel   = "log-level"
	keyModel      = "model"
	keyCells      = "cells"
	keyV          = "v"
	keyU          = "u"
	keyR          = "r"
	keyT1         = "t1"
	keyT2         = "t2"
	keyT3         = "t3"
	keyT4         = "t4"
	keyGain       = "gain"
	keyLoss       = "loss"
	keySaturation = "saturation"
	keyOnsite     = "onsite"
	keyDt         = "dt"
	keyTolerance  = "tolerance"
	keyMaxTime    = "max-time"
)

const envPrefix = "NHLATTICE"

// config is the resolved model description shared by every subcommand.
type config struct {
	Kind    lattice.Kind
	Cells   int
	Hopping lattice.Hopping
	Onsite  lattice.Onsite

	TimeStep  float64
	Tolerance float64
	MaxTime   float64
}

// bindGlobalFlags declares the model flags on fs and binds them into v.
func bindGlobalFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(keyConfig, "", "config file (yaml, json or toml)")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn, error")
	fs.String(keyModel, lattice.KindNRSSH.String(), "lattice model: nrssh or diamond")
	fs.Int(keyCells, 40, "number of unit cells")
	fs.Float64(keyV, 0.3, "NRSSH intra-cell hopping, forward")
	fs.Float64(keyU, 0.5, "NRSSH intra-cell hopping, backward")
	fs.Float64(keyR, 0.7, "NRSSH inter-cell hopping")
	fs.Float64(keyT1, 0.5, "Diamond hopping A→B")
	fs.Float64(keyT2, 0.5, "Diamond hopping A→C")
	fs.Float64(keyT3, 0.5, "Diamond hopping B→A'")
	fs.Float64(keyT4, 0.5, "Diamond hopping C→A'")
	fs.Float64(keyGain, 0.9, "saturable gain γ1")
	fs.Float64(keyLoss, 0.15, "loss γ2")
	fs.Float64(keySaturation, 1, "gain saturation S")
	fs.Float64(keyOnsite, 0, "onsite energy")
	fs.Float64(keyDt, evolve.DefaultTimeStep, "time step Δt")
	fs.Float64(keyTolerance, evolve.DefaultTolerance, "convergence tolerance")
	fs.Float64(keyMaxTime, evolve.DefaultMaxTime, "simulated-time bound")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v.BindPFlags(fs)
}

// readConfigFile merges the --config file, when given, into v.
func readConfigFile(v *viper.Viper) error {
	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}

	return nil
}

// loadConfig resolves v into a config. Numeric ranges are left to the
// library constructors so their sentinels reach the user.
func loadConfig(v *viper.Viper) (config, error) {
	kind, err := lattice.ParseKind(v.GetString(keyModel))
	if err != nil {
		return config{}, err
	}

	return config{
		Kind:  kind,
		Cells: v.GetInt(keyCells),
		Hopping: lattice.Hopping{
			NRSSH: lattice.NRSSHHopping{V: v.GetFloat64(keyV), U: v.GetFloat64(keyU), R: v.GetFloat64(keyR)},
			Diamond: lattice.DiamondHopping{
				T1: v.GetFloat64(keyT1), T2: v.GetFloat64(keyT2),
				T3: v.GetFloat64(keyT3), T4: v.GetFloat64(keyT4),
			},
		},
		Onsite: lattice.Onsite{
			Energy:     v.GetFloat64(keyOnsite),
			Gain:       v.GetFloat64(keyGain),
			Loss:       v.GetFloat64(keyLoss),
			Saturation: v.GetFloat64(keySaturation),
		},
		TimeStep:  v.GetFloat64(keyDt),
		Tolerance: v.GetFloat64(keyTolerance),
		MaxTime:   v.GetFloat64(keyMaxTime),
	}, nil
}

// topology builds the configured lattice.
func (c config) topology() (lattice.Topology, error) {
	return lattice.New(c.Kind, c.Cells, c.Hopping)
}

// evolveOptions maps the config onto evolve options.
func (c config) evolveOptions(log logrus.FieldLogger) []evolve.Option {
	return []evolve.Option{
		evolve.WithTimeStep(c.TimeStep),
		evolve.WithTolerance(c.Tolerance),
		evolve.WithMaxTime(c.MaxTime),
		evolve.WithLogger(log),
	}
}

// newLogger returns a text logger at the named level.
func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return l, nil
}

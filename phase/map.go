// SPDX-License-Identifier: MIT

package phase

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nhlattice/gridgraph"
	"gonum.org/v1/gonum/floats"
)

// Status classifies one grid point of a sweep.
type Status uint8

const (
	// StatusNotConverged means the run hit the time bound.
	StatusNotConverged Status = iota
	// StatusConverged means the total intensity settled within the bound.
	StatusConverged
	// StatusUndefined means the propagator degenerated; the point has no time.
	StatusUndefined
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusNotConverged:
		return "not-converged"
	case StatusConverged:
		return "converged"
	case StatusUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Map is the result of a sweep over the (gain, loss) plane.
// Row i corresponds to Gains[i], column j to Losses[j].
type Map struct {
	Gains  []float64
	Losses []float64

	// Times[i][j] is the convergence time, clamped to MaxTime. NaN when undefined.
	Times [][]float64
	// Converged[i][j] mirrors Status[i][j] == StatusConverged.
	Converged [][]bool
	Status    [][]Status

	MaxTime    float64
	Saturation float64
}

// Point addresses one grid cell with its parameter values.
type Point struct {
	I, J int
	Gain float64
	Loss float64
}

// Summary aggregates a Map.
type Summary struct {
	Points       int
	Converged    int
	NotConverged int
	Undefined    int
	// MaxConvergedTime and MeanConvergedTime are NaN when nothing converged.
	MaxConvergedTime  float64
	MeanConvergedTime float64
}

func newMap(gains, losses []float64, maxTime, saturation float64) *Map {
	m := &Map{
		Gains:      append([]float64(nil), gains...),
		Losses:     append([]float64(nil), losses...),
		Times:      make([][]float64, len(gains)),
		Converged:  make([][]bool, len(gains)),
		Status:     make([][]Status, len(gains)),
		MaxTime:    maxTime,
		Saturation: saturation,
	}
	for i := range gains {
		m.Times[i] = make([]float64, len(losses))
		m.Converged[i] = make([]bool, len(losses))
		m.Status[i] = make([]Status, len(losses))
	}

	return m
}

// Shape returns (len(Gains), len(Losses)).
func (m *Map) Shape() (rows, cols int) { return len(m.Gains), len(m.Losses) }

// At returns the time and status of point (i, j).
//
// Errors:
//   - ErrBadIndex.
func (m *Map) At(i, j int) (float64, Status, error) {
	if !m.inBounds(i, j) {
		return math.NaN(), StatusUndefined, fmt.Errorf("phase: At(%d,%d): %w", i, j, ErrBadIndex)
	}

	return m.Times[i][j], m.Status[i][j], nil
}

// Point returns the parameter values of cell (i, j).
func (m *Map) Point(i, j int) (Point, error) {
	if !m.inBounds(i, j) {
		return Point{}, fmt.Errorf("phase: Point(%d,%d): %w", i, j, ErrBadIndex)
	}

	return Point{I: i, J: j, Gain: m.Gains[i], Loss: m.Losses[j]}, nil
}

// Summary counts statuses and aggregates converged times.
func (m *Map) Summary() Summary {
	var s Summary
	times := make([]float64, 0, len(m.Gains)*len(m.Losses))
	for i := range m.Status {
		for j, st := range m.Status[i] {
			s.Points++
			switch st {
			case StatusConverged:
				s.Converged++
				times = append(times, m.Times[i][j])
			case StatusUndefined:
				s.Undefined++
			default:
				s.NotConverged++
			}
		}
	}
	s.MaxConvergedTime, s.MeanConvergedTime = math.NaN(), math.NaN()
	if len(times) > 0 {
		s.MaxConvergedTime = floats.Max(times)
		s.MeanConvergedTime = floats.Sum(times) / float64(len(times))
	}

	return s
}

// ConvergedCount returns the number of StatusConverged points.
func (m *Map) ConvergedCount() int { return m.Summary().Converged }

// UndefinedCount returns the number of StatusUndefined points.
func (m *Map) UndefinedCount() int { return m.Summary().Undefined }

// MaxConvergedTime returns the largest convergence time; ok is false when
// no point converged.
func (m *Map) MaxConvergedTime() (t float64, ok bool) {
	s := m.Summary()
	if s.Converged == 0 {
		return math.NaN(), false
	}

	return s.MaxConvergedTime, true
}

// ColorIndex buckets the time of a converged point into colors bins:
// int(colors/MaxTime · t), clamped to colors−1. ok is false for points that
// did not converge, which render in a neutral colour.
func (m *Map) ColorIndex(i, j, colors int) (idx int, ok bool) {
	if colors < 1 || !m.inBounds(i, j) || m.Status[i][j] != StatusConverged {
		return 0, false
	}
	idx = int(float64(colors) / m.MaxTime * m.Times[i][j])
	if idx >= colors {
		idx = colors - 1
	}
	if idx < 0 {
		idx = 0
	}

	return idx, true
}

// Labels returns the status of every point as an int grid, row-major by gain.
func (m *Map) Labels() [][]int {
	out := make([][]int, len(m.Status))
	for i, row := range m.Status {
		out[i] = make([]int, len(row))
		for j, st := range row {
			out[i][j] = int(st)
		}
	}

	return out
}

// Regions groups adjacent points with equal status into phase regions.
// Region cells index the map as i*len(Losses)+j.
//
// Errors:
//   - gridgraph errors for an empty map.
func (m *Map) Regions(conn gridgraph.Connectivity) ([]gridgraph.Region, error) {
	gg, err := m.grid(conn)
	if err != nil {
		return nil, phaseErrorf(opRegions, err)
	}

	return gg.ConnectedComponents(), nil
}

// Boundary lists the points adjacent to a point of different status,
// i.e. the sampled phase boundary, in row-major order.
func (m *Map) Boundary(conn gridgraph.Connectivity) ([]Point, error) {
	gg, err := m.grid(conn)
	if err != nil {
		return nil, phaseErrorf(opRegions, err)
	}
	cells := gg.BoundaryCells()
	out := make([]Point, 0, len(cells))
	for _, c := range cells {
		j, i := gg.Coordinate(c)
		out = append(out, Point{I: i, J: j, Gain: m.Gains[i], Loss: m.Losses[j]})
	}

	return out, nil
}

func (m *Map) grid(conn gridgraph.Connectivity) (*gridgraph.GridGraph, error) {
	return gridgraph.NewGridGraph(m.Labels(), gridgraph.GridOptions{Conn: conn})
}

func (m *Map) inBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < len(m.Gains) && j < len(m.Losses)
}

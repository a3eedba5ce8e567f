// Package phase sweeps the (gain, loss) plane of a lattice model and records,
// for every point, how long a single-site excitation takes to settle.
//
// Scan visits the Cartesian product of two axes row-major (outer gain, inner
// loss), optionally on several goroutines via WithWorkers. Each point runs
// evolve.Run with the sweep's tight defaults (Δt = 0.015, maxTime = 10);
// forward different ones with WithEvolveOptions.
//
// A point is StatusConverged, StatusNotConverged, or StatusUndefined when the
// propagator degenerates. Undefined points carry Time = NaN and never abort
// the sweep.
//
// The resulting Map groups equal-status neighbours into regions and extracts
// the sampled phase boundary through the gridgraph package. Reference lines
// (EqualGainLossLine, SaturationLine) and ColorIndex serve plotting.
package phase

// Package lattice describes one-dimensional tight-binding chains and
// assembles their (generally non-Hermitian) Hamiltonians.
//
// 🚀 What is here?
//
//	Two unit-cell topologies share one Topology interface:
//	  • NRSSH   — 2 sites/cell, non-reciprocal intra-cell hopping (v forward,
//	              u backward) and reciprocal inter-cell hopping r; N = 2·cells.
//	  • Diamond — 3 sites/cell with bonds t1..t4 plus one terminal site;
//	              N = 3·cells + 1.
//
//	Each topology builds its hopping matrix once. Hopping() hands out a
//	copy, so the base matrix is immutable for the lifetime of the value.
//
// ✨ Onsite model:
//   - every site gets the real onsite energy;
//   - gain sites get +i·γ1/(1+S|φ_i|²) (saturable gain);
//   - loss sites get −i·γ2 (constant loss).
//
// NRSSH sites carry both terms; Diamond A-sites (i%3==0) carry gain while
// B/C-sites carry loss.
//
// ⚙️ Usage:
//
//	top, err := lattice.NewNRSSH(50, lattice.NRSSHHopping{V: 0.2, U: 0.5, R: 0.9})
//	h, err := lattice.Assemble(top, phi, lattice.Onsite{Gain: 0.9, Loss: 0.15, Saturation: 1})
//
// Assemble always returns a fresh matrix; nothing a caller does to it can
// reach the topology.
package lattice

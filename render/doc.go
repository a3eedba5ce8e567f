// Package render writes PNG figures of evolution results with gonum/plot:
// intensity frames (Frames), phase maps (PhaseMap) and spectra (Bands,
// Eigenvalues). Canvas size and resolution are set with WithSize and WithDPI.
package render

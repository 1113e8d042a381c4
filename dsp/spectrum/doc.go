// Package spectrum transforms sample sequences into display-ready magnitude
// spectra.
//
// The analyzer adapts its input to the transform size (zero-padding the tail
// or truncating from the front), performs a forward FFT, extracts Euclidean
// magnitudes, rotates the bins so DC sits at the midpoint, and clamps any
// non-finite value to zero. Lower-level helpers for magnitude, power, and
// phase extraction from complex bins are exposed for callers that run their
// own transforms.
package spectrum

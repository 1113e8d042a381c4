// Package fir designs and applies finite-impulse-response filter kernels.
//
// Two kernel families are provided: a raised-cosine window kernel with a
// roll-off factor, and a Hamming-windowed sinc low-pass kernel with a
// normalized cutoff. Both are normalized to unity DC gain, so a constant
// input passes through unchanged.
//
// A designed Kernel can be applied directly to the tail of a sample history
// (one output per call), or wrapped in a streaming Filter with an internal
// delay line for block processing.
package fir

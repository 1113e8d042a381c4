// Package buffer provides a fixed-capacity sliding window over a scalar
// sample stream.
//
// Appending beyond capacity evicts the oldest sample first. Readers receive
// chronological copies, so DSP functions downstream never alias or mutate
// the live window.
package buffer

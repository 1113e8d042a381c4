package fir

import "fmt"

// Kernel is an immutable FIR coefficient set. Tap 0 weights the newest
// sample when the kernel is applied to a history.
type Kernel struct {
	coeffs []float64
}

// NewKernel creates a kernel from raw coefficients. The slice is copied.
func NewKernel(coeffs []float64) (Kernel, error) {
	if len(coeffs) == 0 {
		return Kernel{}, errEmptyKernel
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Kernel{coeffs: c}, nil
}

// Len returns the number of taps.
func (k Kernel) Len() int {
	return len(k.coeffs)
}

// Coefficients returns a copy of the kernel coefficients.
func (k Kernel) Coefficients() []float64 {
	c := make([]float64, len(k.coeffs))
	copy(c, k.coeffs)
	return c
}

// Apply convolves the kernel with the newest Len() samples of history
// (newest sample last) and returns one filtered output value:
//
//	y = sum_{i=0}^{L-1} coeff[i] * history[last-i]
//
// The history must hold at least Len() samples; a shorter history is a
// caller precondition violation reported via ErrShortHistory.
func (k Kernel) Apply(history []float64) (float64, error) {
	if len(history) < len(k.coeffs) {
		return 0, fmt.Errorf("%w: have %d samples, need %d", ErrShortHistory, len(history), len(k.coeffs))
	}

	var y float64
	last := len(history) - 1
	for i, c := range k.coeffs {
		y += c * history[last-i]
	}
	return y, nil
}

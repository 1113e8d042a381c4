package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/filterview/dsp/core"
)

// Analyzer produces DC-centered magnitude spectra of a fixed transform size.
//
// It caches the FFT plan and packing scratch, so repeated calls allocate only
// the returned frame. An Analyzer is not safe for concurrent use; independent
// goroutines should each hold their own.
type Analyzer struct {
	size int
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewAnalyzer creates an analyzer for the given transform size.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 1 {
		return nil, fmt.Errorf("fft size must be >= 1: %d", size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum fft plan: %w", err)
	}

	return &Analyzer{
		size: size,
		plan: plan,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
	}, nil
}

// Size returns the transform size.
func (a *Analyzer) Size() int {
	return a.size
}

// Analyze transforms samples into a magnitude spectrum frame of length Size.
//
// Inputs shorter than the transform size are zero-padded at the tail;
// longer inputs are truncated to their first Size samples. The returned
// frame is DC-centered (output index k corresponds to frequency bin
// k - Size/2) and contains no non-finite values.
func (a *Analyzer) Analyze(samples []float64) ([]float64, error) {
	n := len(samples)
	if n > a.size {
		n = a.size
	}
	for i := range n {
		a.in[i] = complex(samples[i], 0)
	}
	for i := n; i < a.size; i++ {
		a.in[i] = 0
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum forward fft: %w", err)
	}

	frame := Shift(Magnitude(a.out))
	Sanitize(frame)
	return frame, nil
}

// Analyze is the one-shot form of [Analyzer.Analyze]; it builds a plan,
// transforms, and discards the plan. Callers on a periodic cadence should
// hold an Analyzer instead.
func Analyze(samples []float64, size int) ([]float64, error) {
	a, err := NewAnalyzer(size)
	if err != nil {
		return nil, err
	}
	return a.Analyze(samples)
}

// Shift returns bins rearranged so the DC component sits at the midpoint:
// the upper (negative-frequency) half moves to the front, the lower half
// to the back. Shifted index k corresponds to frequency bin k - n/2.
func Shift(bins []float64) []float64 {
	n := len(bins)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	half := (n + 1) / 2
	copy(out, bins[half:])
	copy(out[n-half:], bins[:half])
	return out
}

// Sanitize replaces every non-finite value with exactly 0 in place.
// This is a terminal clamp for display consumers, not an error signal.
func Sanitize(values []float64) {
	for i, v := range values {
		values[i] = core.Sanitize(v)
	}
}

package fir

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroSum reports a parameter combination whose unnormalized
	// coefficients sum to zero, making unity-gain normalization impossible.
	ErrZeroSum = errors.New("designed zero-sum filter kernel")

	// ErrShortHistory reports an Apply call with fewer samples than the
	// kernel length. The caller must prime the history before first use.
	ErrShortHistory = errors.New("sample history shorter than kernel")

	errEmptyKernel = errors.New("kernel must have at least one coefficient")
)

func validateLength(length int) error {
	if length < 1 {
		return fmt.Errorf("filter length must be >= 1: %d", length)
	}
	return nil
}

func validateBeta(beta float64) error {
	if beta < 0 || beta > 1 {
		return fmt.Errorf("roll-off beta must be in [0,1]: %f", beta)
	}
	return nil
}

func validateCutoff(cutoff float64) error {
	if cutoff <= 0 || cutoff >= 0.5 {
		return fmt.Errorf("cutoff must be in (0,0.5): %f", cutoff)
	}
	return nil
}

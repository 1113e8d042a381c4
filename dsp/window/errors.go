package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateRaisedCosine(size int, beta float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if beta < 0 || beta > 1 {
		return fmt.Errorf("raised cosine beta must be in [0,1]: %f", beta)
	}
	return nil
}

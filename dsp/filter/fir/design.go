package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/filterview/dsp/window"
)

// Family identifies a kernel design family.
type Family int

const (
	FamilyRaisedCosine Family = iota
	FamilyLowPass
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyRaisedCosine:
		return "raised-cosine"
	case FamilyLowPass:
		return "low-pass"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Spec selects a kernel family together with its parameters. Beta applies
// to FamilyRaisedCosine, Cutoff to FamilyLowPass; the inactive parameter
// is ignored.
type Spec struct {
	Family Family
	Length int
	Beta   float64
	Cutoff float64
}

// RaisedCosine returns a Spec for a raised-cosine kernel with roll-off beta.
func RaisedCosine(length int, beta float64) Spec {
	return Spec{Family: FamilyRaisedCosine, Length: length, Beta: beta}
}

// LowPass returns a Spec for a Hamming-windowed low-pass kernel with the
// given cutoff as a fraction of the sampling rate.
func LowPass(length int, cutoff float64) Spec {
	return Spec{Family: FamilyLowPass, Length: length, Cutoff: cutoff}
}

// Design returns the kernel described by s, dispatching on its family.
func Design(s Spec) (Kernel, error) {
	switch s.Family {
	case FamilyRaisedCosine:
		return DesignRaisedCosine(s.Length, s.Beta)
	case FamilyLowPass:
		return DesignLowPass(s.Length, s.Cutoff)
	default:
		return Kernel{}, fmt.Errorf("unknown filter family: %d", int(s.Family))
	}
}

// DesignRaisedCosine returns a unity-DC-gain raised-cosine kernel.
//
// Tap i is the raised-cosine window value 0.5*(1+cos(pi*(2t-1)*beta)) at
// t = i/(length-1), normalized so the taps sum to 1. Beta 0 yields a
// uniform moving-average kernel, beta 1 maximal edge tapering.
func DesignRaisedCosine(length int, beta float64) (Kernel, error) {
	if err := validateLength(length); err != nil {
		return Kernel{}, err
	}
	if err := validateBeta(beta); err != nil {
		return Kernel{}, err
	}

	coeffs, err := window.RaisedCosine(length, beta)
	if err != nil {
		return Kernel{}, err
	}

	return normalizedKernel(coeffs)
}

// DesignLowPass returns a unity-DC-gain windowed-sinc low-pass kernel.
//
// The ideal low-pass response sin(2*pi*cutoff*t)/(pi*t) is sampled at
// t = i-(length-1)/2 (with the sinc limit 2*cutoff at t=0), tapered by a
// Hamming window to bound the truncation ringing, then normalized so the
// taps sum to 1.
func DesignLowPass(length int, cutoff float64) (Kernel, error) {
	if err := validateLength(length); err != nil {
		return Kernel{}, err
	}
	if err := validateCutoff(cutoff); err != nil {
		return Kernel{}, err
	}

	coeffs := make([]float64, length)
	center := float64(length-1) / 2
	for i := range coeffs {
		t := float64(i) - center
		if t == 0 {
			coeffs[i] = 2 * cutoff
		} else {
			coeffs[i] = math.Sin(2*math.Pi*cutoff*t) / (math.Pi * t)
		}
	}

	if err := window.ApplyCoefficientsInPlace(coeffs, window.Generate(window.TypeHamming, length)); err != nil {
		return Kernel{}, err
	}

	return normalizedKernel(coeffs)
}

// normalizedKernel scales coeffs in place to unit sum and wraps them.
func normalizedKernel(coeffs []float64) (Kernel, error) {
	sum := vecmath.Sum(coeffs)
	if sum == 0 {
		return Kernel{}, ErrZeroSum
	}

	vecmath.ScaleBlockInPlace(coeffs, 1/sum)

	return Kernel{coeffs: coeffs}, nil
}

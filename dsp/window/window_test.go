package window

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGenerate_InvalidLength(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Errorf("length 0: got %v, want nil", got)
	}
	if got := Generate(TypeHann, -3); got != nil {
		t.Errorf("negative length: got %v, want nil", got)
	}
}

func TestGenerate_Rectangular(t *testing.T) {
	for _, v := range Generate(TypeRectangular, 8) {
		if v != 1 {
			t.Fatalf("rectangular coefficient: got %v, want 1", v)
		}
	}
}

func TestGenerate_HammingEndpoints(t *testing.T) {
	// Symmetric Hamming: w(0) = w(L-1) = 0.54 - 0.46 = 0.08, midpoint = 1.
	w := Generate(TypeHamming, 9)
	if !almostEqual(w[0], 0.08, eps) {
		t.Errorf("w[0]: got %v, want 0.08", w[0])
	}
	if !almostEqual(w[8], 0.08, eps) {
		t.Errorf("w[8]: got %v, want 0.08", w[8])
	}
	if !almostEqual(w[4], 1, eps) {
		t.Errorf("w[4]: got %v, want 1", w[4])
	}
}

func TestGenerate_HammingMatchesFormula(t *testing.T) {
	const n = 21
	w := Generate(TypeHamming, n)
	for i := range w {
		want := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		if !almostEqual(w[i], want, eps) {
			t.Errorf("w[%d]: got %v, want %v", i, w[i], want)
		}
	}
}

func TestRaisedCosine_BetaZeroIsFlat(t *testing.T) {
	w, err := RaisedCosine(16, 0)
	if err != nil {
		t.Fatalf("RaisedCosine: %v", err)
	}
	for i, v := range w {
		if !almostEqual(v, 1, eps) {
			t.Errorf("w[%d]: got %v, want 1", i, v)
		}
	}
}

func TestRaisedCosine_BetaOneIsHann(t *testing.T) {
	// Full roll-off matches the Hann window: 0.5*(1+cos(pi*(2x-1))) = 0.5*(1-cos(2*pi*x)).
	rc, err := RaisedCosine(33, 1)
	if err != nil {
		t.Fatalf("RaisedCosine: %v", err)
	}
	hann := Generate(TypeHann, 33)
	for i := range rc {
		if !almostEqual(rc[i], hann[i], 1e-9) {
			t.Errorf("w[%d]: raised cosine %v, hann %v", i, rc[i], hann[i])
		}
	}
}

func TestRaisedCosine_Symmetry(t *testing.T) {
	w, err := RaisedCosine(10, 0.5)
	if err != nil {
		t.Fatalf("RaisedCosine: %v", err)
	}
	for i := range len(w) / 2 {
		j := len(w) - 1 - i
		if !almostEqual(w[i], w[j], eps) {
			t.Errorf("w[%d]=%v, w[%d]=%v: not symmetric", i, w[i], j, w[j])
		}
	}
}

func TestRaisedCosine_InvalidBeta(t *testing.T) {
	for _, beta := range []float64{-0.1, 1.1} {
		if _, err := RaisedCosine(8, beta); err == nil {
			t.Errorf("beta %v: want error", beta)
		}
	}
	if _, err := RaisedCosine(0, 0.5); err == nil {
		t.Error("size 0: want error")
	}
}

func TestGenerate_Periodic(t *testing.T) {
	// Periodic form divides by size, so the last coefficient never reaches
	// the symmetric endpoint.
	sym := Generate(TypeHann, 8)
	per := Generate(TypeHann, 8, WithPeriodic())
	if almostEqual(sym[7], per[7], eps) {
		t.Error("periodic and symmetric forms should differ at the last sample")
	}
	if !almostEqual(per[0], 0, eps) {
		t.Errorf("periodic hann w[0]: got %v, want 0", per[0])
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}
	want := []float64{0.5, 1, 1.5}
	for i := range want {
		if !almostEqual(out[i], want[i], eps) {
			t.Errorf("out[%d]: got %v, want %v", i, out[i], want[i])
		}
	}
	if samples[0] != 1 {
		t.Error("input mutated")
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Error("mismatched lengths: want error")
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{1, 2, 3}
	if err := ApplyCoefficientsInPlace(samples, []float64{2, 2, 2}); err != nil {
		t.Fatalf("ApplyCoefficientsInPlace: %v", err)
	}
	want := []float64{2, 4, 6}
	for i := range want {
		if !almostEqual(samples[i], want[i], eps) {
			t.Errorf("samples[%d]: got %v, want %v", i, samples[i], want[i])
		}
	}

	if err := ApplyCoefficientsInPlace(samples, []float64{1}); err == nil {
		t.Error("mismatched lengths: want error")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	// Rectangular window has ENBW of exactly 1 bin.
	enbw, err := EquivalentNoiseBandwidth(Generate(TypeRectangular, 64))
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth: %v", err)
	}
	if !almostEqual(enbw, 1, eps) {
		t.Errorf("rectangular ENBW: got %v, want 1", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Error("empty coeffs: want error")
	}
	if _, err := EquivalentNoiseBandwidth([]float64{1, -1}); err == nil {
		t.Error("zero coherent gain: want error")
	}
}

func TestSingleSampleWindow(t *testing.T) {
	w := Generate(TypeHamming, 1)
	if len(w) != 1 {
		t.Fatalf("length: got %d, want 1", len(w))
	}
	// Position convention pins the single sample at x=0.
	if !almostEqual(w[0], 0.08, eps) {
		t.Errorf("w[0]: got %v, want 0.08", w[0])
	}
}

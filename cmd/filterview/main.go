// Command filterview streams a generated test signal through a FIR filter
// pipeline and prints the resulting kernel and magnitude spectra.
//
// Usage:
//
//	filterview [flags]
//
// Examples:
//
//	filterview
//	filterview -family low-pass -length 31 -cutoff 0.1
//	filterview -family raised-cosine -beta 0.25 -samples 1000
//	filterview -fft 256 -rate 1000 -freq 100 -noise 0.5
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/filterview/dsp/core"
	"github.com/cwbudde/filterview/dsp/filter/fir"
	"github.com/cwbudde/filterview/dsp/signal"
	"github.com/cwbudde/filterview/dsp/stream"
)

func main() {
	family := flag.String("family", "raised-cosine", "filter family: raised-cosine or low-pass")
	length := flag.Int("length", 30, "filter kernel length in taps")
	beta := flag.Float64("beta", 0.5, "raised-cosine rolloff in [0, 1]")
	cutoff := flag.Float64("cutoff", 0.1, "low-pass normalized cutoff in (0, 0.5)")
	fftSize := flag.Int("fft", 512, "FFT transform size")
	rate := flag.Float64("rate", 500, "sample rate in Hz")
	windowSize := flag.Int("window", 200, "history window size in samples")
	samples := flag.Int("samples", 500, "number of samples to stream")
	freq := flag.Float64("freq", 25, "test tone frequency in Hz")
	noise := flag.Float64("noise", 0.25, "additive white noise amplitude")
	seed := flag.Int64("seed", 1, "noise generator seed")
	top := flag.Int("top", 5, "number of spectral peaks to print per spectrum")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterview [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Streams a noisy sine through a FIR filter and prints both spectra.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterview -family low-pass -length 31 -cutoff 0.1\n")
		fmt.Fprintf(os.Stderr, "  filterview -family raised-cosine -beta 0.25\n")
	}
	flag.Parse()

	spec, err := resolveSpec(*family, *length, *beta, *cutoff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	coreOpts := []core.ProcessorOption{
		core.WithSampleRate(*rate),
		core.WithFFTSize(*fftSize),
		core.WithWindowSize(*windowSize),
	}

	p, err := stream.NewProcessor(spec, coreOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	gen := signal.NewGeneratorWithOptions(coreOpts, signal.WithSeed(*seed))
	stimulus, err := gen.NoisySine(*freq, 1, *noise, *samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if _, err := p.PushBlock(stimulus); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rawFrame, err := p.RawSpectrum()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	filteredFrame, err := p.FilteredSpectrum()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printKernel(p.Kernel(), spec)
	printLatest(p)
	printSpectrum("raw", rawFrame, *rate, *top)
	printSpectrum("filtered", filteredFrame, *rate, *top)
}

func resolveSpec(family string, length int, beta, cutoff float64) (fir.Spec, error) {
	switch family {
	case "raised-cosine":
		return fir.RaisedCosine(length, beta), nil
	case "low-pass":
		return fir.LowPass(length, cutoff), nil
	default:
		return fir.Spec{}, fmt.Errorf("unknown filter family %q (use raised-cosine or low-pass)", family)
	}
}

func printKernel(kernel fir.Kernel, spec fir.Spec) {
	coeffs := kernel.Coefficients()

	sum := 0.0
	maxAsym := 0.0
	for i, c := range coeffs {
		sum += c
		if d := math.Abs(c - coeffs[len(coeffs)-1-i]); d > maxAsym {
			maxAsym = d
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\t%s\n", spec.Family)
	fmt.Fprintf(tw, "Taps\t%d\n", kernel.Len())
	fmt.Fprintf(tw, "Tap sum\t%.6f\n", sum)
	fmt.Fprintf(tw, "Max asymmetry\t%.3g\n", maxAsym)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printLatest(p *stream.Processor) {
	raw, filtered := p.Latest()
	fmt.Printf("Latest sample: raw %+.4f, filtered %+.4f\n\n", raw, filtered)
}

func printSpectrum(name string, frame []float64, rate float64, top int) {
	type peak struct {
		index int
		value float64
	}
	peaks := make([]peak, len(frame))
	for i, v := range frame {
		peaks[i] = peak{i, v}
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].value > peaks[j].value })
	if top > len(peaks) {
		top = len(peaks)
	}

	n := len(frame)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Top %s bins\tBin\tFreq [Hz]\tMagnitude\tLevel [dB]\n", name)
	for _, pk := range peaks[:top] {
		centered := pk.index - n/2
		freqHz := float64(centered) * rate / float64(n)
		fmt.Fprintf(tw, "\t%+d\t%+.2f\t%.4f\t%.2f\n",
			centered, freqHz, pk.value, core.LinearToDB(pk.value))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

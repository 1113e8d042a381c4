package stream

import (
	"fmt"

	"github.com/cwbudde/filterview/dsp/buffer"
	"github.com/cwbudde/filterview/dsp/core"
	"github.com/cwbudde/filterview/dsp/filter/fir"
	"github.com/cwbudde/filterview/dsp/spectrum"
)

// Processor is a push-driven filter-and-analyze pipeline.
//
// Each pushed sample is appended to a bounded raw history, filtered through
// the current kernel over the newest samples, and the result appended to a
// filtered history of the same capacity. Both histories are zero-primed at
// construction so the very first push already has a full filter window.
//
// A Processor is not safe for concurrent use.
type Processor struct {
	cfg      core.ProcessorConfig
	spec     fir.Spec
	kernel   fir.Kernel
	raw      *buffer.History
	filtered *buffer.History
	analyzer *spectrum.Analyzer
}

// NewProcessor creates a pipeline around the given filter design.
//
// The window size option bounds both histories and must accommodate the
// kernel length; the FFT size option fixes the spectrum frame length.
func NewProcessor(spec fir.Spec, opts ...core.ProcessorOption) (*Processor, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if cfg.WindowSize < spec.Length {
		return nil, fmt.Errorf("stream window size %d cannot hold kernel of length %d", cfg.WindowSize, spec.Length)
	}

	kernel, err := fir.Design(spec)
	if err != nil {
		return nil, fmt.Errorf("stream filter design: %w", err)
	}

	raw, err := buffer.NewHistory(cfg.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("stream raw history: %w", err)
	}
	filtered, err := buffer.NewHistory(cfg.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("stream filtered history: %w", err)
	}
	raw.Fill(0)
	filtered.Fill(0)

	analyzer, err := spectrum.NewAnalyzer(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("stream analyzer: %w", err)
	}

	return &Processor{
		cfg:      cfg,
		spec:     spec,
		kernel:   kernel,
		raw:      raw,
		filtered: filtered,
		analyzer: analyzer,
	}, nil
}

// Config returns the processor configuration.
func (p *Processor) Config() core.ProcessorConfig {
	return p.cfg
}

// Filter returns the active filter design.
func (p *Processor) Filter() fir.Spec {
	return p.spec
}

// Kernel returns the active kernel.
func (p *Processor) Kernel() fir.Kernel {
	return p.kernel
}

// SetFilter swaps the filter design. The kernel is redesigned only when the
// design actually changes; histories are left untouched, so the new filter
// takes effect from the next push without a transient reset.
func (p *Processor) SetFilter(spec fir.Spec) error {
	if spec == p.spec {
		return nil
	}
	if p.cfg.WindowSize < spec.Length {
		return fmt.Errorf("stream window size %d cannot hold kernel of length %d", p.cfg.WindowSize, spec.Length)
	}
	kernel, err := fir.Design(spec)
	if err != nil {
		return fmt.Errorf("stream filter design: %w", err)
	}
	p.spec = spec
	p.kernel = kernel
	return nil
}

// Push feeds one raw sample through the pipeline and returns the filtered
// sample. A non-finite filter output is clamped to 0 before it enters the
// filtered history, so one bad sample cannot poison later spectra.
func (p *Processor) Push(x float64) (float64, error) {
	p.raw.Append(x)

	tail, err := p.raw.Tail(p.kernel.Len())
	if err != nil {
		return 0, fmt.Errorf("stream push: %w", err)
	}
	y, err := p.kernel.Apply(tail)
	if err != nil {
		return 0, fmt.Errorf("stream push: %w", err)
	}
	y = core.Sanitize(y)

	p.filtered.Append(y)
	return y, nil
}

// PushBlock feeds samples in order and returns the filtered block.
func (p *Processor) PushBlock(samples []float64) ([]float64, error) {
	out := make([]float64, len(samples))
	for i, x := range samples {
		y, err := p.Push(x)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

// Raw returns a chronological copy of the raw history.
func (p *Processor) Raw() []float64 {
	return p.raw.Snapshot()
}

// Filtered returns a chronological copy of the filtered history.
func (p *Processor) Filtered() []float64 {
	return p.filtered.Snapshot()
}

// Latest returns the most recent raw and filtered samples.
func (p *Processor) Latest() (raw, filtered float64) {
	return p.raw.Latest(), p.filtered.Latest()
}

// RawSpectrum returns the magnitude spectrum frame of the raw history.
func (p *Processor) RawSpectrum() ([]float64, error) {
	return p.analyzer.Analyze(p.raw.Snapshot())
}

// FilteredSpectrum returns the magnitude spectrum frame of the filtered history.
func (p *Processor) FilteredSpectrum() ([]float64, error) {
	return p.analyzer.Analyze(p.filtered.Snapshot())
}

// Reset re-primes both histories with zeros, keeping the current filter.
func (p *Processor) Reset() {
	p.raw.Fill(0)
	p.filtered.Fill(0)
}

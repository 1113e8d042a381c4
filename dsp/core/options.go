package core

// ProcessorConfig defines common settings for the streaming pipeline.
type ProcessorConfig struct {
	SampleRate   float64
	FFTSize      int
	FilterLength int
	WindowSize   int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults sized for a slow scalar stream:
// a 500 Hz sample cadence analyzed in 512-point frames, filtered over the
// 30 most recent samples, with a 200-sample display window.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:   500,
		FFTSize:      512,
		FilterLength: 30,
		WindowSize:   200,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the spectrum transform size.
func WithFFTSize(size int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if size > 0 {
			cfg.FFTSize = size
		}
	}
}

// WithFilterLength sets the number of recent samples the FIR kernel spans.
func WithFilterLength(length int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if length > 0 {
			cfg.FilterLength = length
		}
	}
}

// WithWindowSize sets the sliding history capacity.
func WithWindowSize(size int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if size > 0 {
			cfg.WindowSize = size
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

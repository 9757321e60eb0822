package colorfall

import "github.com/cwbudde/colorfall/dsp/core"

const (
	// DefaultLoudnessTimeMs is the smoothing time of the loudness correction.
	DefaultLoudnessTimeMs = 200.0

	// DefaultGainSmoothingMs is the smoothing time of each band's gain
	// reduction factor.
	DefaultGainSmoothingMs = 1.0

	// DefaultMeterTimeMs is the smoothing time of the published meter value.
	DefaultMeterTimeMs = 50.0
)

// Config holds the construction settings of an Engine.
type Config struct {
	core.ProcessorConfig

	LoudnessTimeMs  float64
	GainSmoothingMs float64
	MeterTimeMs     float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		LoudnessTimeMs:  DefaultLoudnessTimeMs,
		GainSmoothingMs: DefaultGainSmoothingMs,
		MeterTimeMs:     DefaultMeterTimeMs,
	}
}

// WithSampleRate sets the processing sample rate. New rejects rates that
// are not positive and finite.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithMaxBlockSize sets the largest block processed in one pass. Longer
// host blocks are split into chunks of this size.
func WithMaxBlockSize(blockSize int) Option {
	return func(cfg *Config) {
		cfg.BlockSize = blockSize
	}
}

// WithLoudnessTime sets the loudness correction smoothing time.
func WithLoudnessTime(ms float64) Option {
	return func(cfg *Config) {
		cfg.LoudnessTimeMs = ms
	}
}

// WithGainSmoothing sets the per-band gain reduction smoothing time.
func WithGainSmoothing(ms float64) Option {
	return func(cfg *Config) {
		cfg.GainSmoothingMs = ms
	}
}

// WithMeterTime sets the meter smoothing time.
func WithMeterTime(ms float64) Option {
	return func(cfg *Config) {
		cfg.MeterTimeMs = ms
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

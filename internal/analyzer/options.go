package analyzer

import "go-gray-stats/pkg/validation"

// Options provides configuration for grayscale analysis
type Options struct {
	// FastMode skips everything beyond the core mean/stddev computation
	FastMode bool

	// SkipEntropy disables the histogram entropy metric only
	SkipEntropy bool

	// Exposure thresholds applied to the computed statistics
	Thresholds validation.ExposureThresholds
}

// DefaultOptions returns default analysis options
func DefaultOptions() Options {
	return Options{
		FastMode:    false,
		SkipEntropy: false,
		Thresholds:  validation.DefaultExposureThresholds(),
	}
}

// FastOptions returns options that compute only the core statistics
func FastOptions() Options {
	opts := DefaultOptions()
	opts.FastMode = true
	return opts
}

// WithThresholds returns options with custom exposure thresholds
func (opts Options) WithThresholds(thresholds validation.ExposureThresholds) Options {
	opts.Thresholds = thresholds
	return opts
}

// WithoutEntropy returns options with the entropy metric disabled
func (opts Options) WithoutEntropy() Options {
	opts.SkipEntropy = true
	return opts
}

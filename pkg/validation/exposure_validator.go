package validation

// ExposureThresholds defines configurable thresholds for exposure validation
// of grayscale intensity statistics.
type ExposureThresholds struct {
	// Mean intensity bounds, in [0, 255]
	MinMean float64
	MaxMean float64

	// Minimum standard deviation below which an image is considered flat
	// (blank wall, lens cap, sensor fault)
	MinStdDev float64
}

// DefaultExposureThresholds returns the default exposure thresholds
func DefaultExposureThresholds() ExposureThresholds {
	return ExposureThresholds{
		MinMean:   40.0,
		MaxMean:   215.0,
		MinStdDev: 8.0,
	}
}

// ExposureIssue represents an exposure validation issue
type ExposureIssue struct {
	Type        string  `json:"type"`
	Message     string  `json:"message"`
	Severity    string  `json:"severity"` // "error", "warning"
	ActualValue float64 `json:"actual_value"`
	Threshold   float64 `json:"threshold"`
}

// ExposureValidator flags under-exposed, over-exposed and flat images from
// their mean and standard deviation.
type ExposureValidator struct {
	thresholds ExposureThresholds
}

// NewExposureValidator creates an exposure validator with default thresholds
func NewExposureValidator() *ExposureValidator {
	return &ExposureValidator{thresholds: DefaultExposureThresholds()}
}

// NewExposureValidatorWithThresholds creates an exposure validator with
// custom thresholds
func NewExposureValidatorWithThresholds(thresholds ExposureThresholds) *ExposureValidator {
	return &ExposureValidator{thresholds: thresholds}
}

// Validate checks grayscale statistics against the configured thresholds
func (v *ExposureValidator) Validate(mean, stddev float64) []ExposureIssue {
	var issues []ExposureIssue

	if mean < v.thresholds.MinMean {
		issues = append(issues, ExposureIssue{
			Type:        "too_dark",
			Message:     "Image is under-exposed",
			Severity:    "error",
			ActualValue: mean,
			Threshold:   v.thresholds.MinMean,
		})
	}
	if mean > v.thresholds.MaxMean {
		issues = append(issues, ExposureIssue{
			Type:        "too_bright",
			Message:     "Image is over-exposed",
			Severity:    "error",
			ActualValue: mean,
			Threshold:   v.thresholds.MaxMean,
		})
	}
	if stddev < v.thresholds.MinStdDev {
		issues = append(issues, ExposureIssue{
			Type:        "low_contrast",
			Message:     "Image intensity is nearly uniform",
			Severity:    "warning",
			ActualValue: stddev,
			Threshold:   v.thresholds.MinStdDev,
		})
	}

	return issues
}

// ConvertIssuesToMessages flattens issues into human-readable strings
func (v *ExposureValidator) ConvertIssuesToMessages(issues []ExposureIssue) []string {
	if len(issues) == 0 {
		return nil
	}
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

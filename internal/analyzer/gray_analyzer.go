package analyzer

import (
	"image"
	"image/draw"

	"gonum.org/v1/gonum/stat"

	"go-gray-stats/internal/graystats"
	"go-gray-stats/pkg/validation"
)

// grayAnalyzer implements GrayAnalyzer on top of the graystats core
type grayAnalyzer struct{}

// NewGrayAnalyzer creates a new grayscale analyzer
func NewGrayAnalyzer() GrayAnalyzer {
	return &grayAnalyzer{}
}

// Analyze converts the image to 8-bit grayscale and computes its intensity
// statistics. The grayscale plane is handed to the strided-buffer core
// without copying; image.Gray's Pix/Stride layout is exactly the buffer
// model the core operates on.
func (a *grayAnalyzer) Analyze(img image.Image, opts Options) Report {
	bounds := img.Bounds()
	report := Report{Width: bounds.Dx(), Height: bounds.Dy()}
	if report.Width == 0 || report.Height == 0 {
		return report
	}

	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(bounds)
		draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	}

	buf, err := graystats.FromGray(gray)
	if err != nil {
		// Unreachable for a non-empty stdlib image; keep the zero report
		// consistent with the core's sentinel policy.
		return report
	}

	result := buf.Stats()
	report.Mean = result.Mean
	report.StdDev = result.StdDev

	validator := validation.NewExposureValidatorWithThresholds(opts.Thresholds)
	issues := validator.Validate(float64(result.Mean), float64(result.StdDev))
	report.Issues = validator.ConvertIssuesToMessages(issues)

	if opts.FastMode {
		return report
	}

	report.Min, report.Max = intensityRange(buf)
	if !opts.SkipEntropy {
		report.Entropy = histogramEntropy(buf)
	}
	report.HasExtended = true

	return report
}

// intensityRange scans the valid samples for their minimum and maximum.
func intensityRange(buf *graystats.Buffer) (uint8, uint8) {
	min, max := uint8(255), uint8(0)
	for y := int32(0); y < buf.Height(); y++ {
		for _, s := range buf.Row(y) {
			if s < min {
				min = s
			}
			if s > max {
				max = s
			}
		}
	}
	return min, max
}

// histogramEntropy computes the Shannon entropy (nats) of the normalized
// 256-bin intensity histogram.
func histogramEntropy(buf *graystats.Buffer) float64 {
	var counts [256]float64
	total := 0.0
	for y := int32(0); y < buf.Height(); y++ {
		for _, s := range buf.Row(y) {
			counts[s]++
			total++
		}
	}

	p := make([]float64, 256)
	for i, c := range counts {
		p[i] = c / total
	}
	return stat.Entropy(p)
}

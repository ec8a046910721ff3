package analyzer

import "image"

// GrayAnalyzer computes grayscale intensity statistics for decoded images
type GrayAnalyzer interface {
	// Analyze converts the image to grayscale and computes its statistics
	Analyze(img image.Image, opts Options) Report
}

// Report holds the outcome of one analysis
type Report struct {
	// Core statistics, always present
	Mean   float32
	StdDev float32

	Width  int
	Height int

	// Extended metrics, absent in fast mode
	Min         uint8
	Max         uint8
	Entropy     float64
	HasExtended bool

	// Exposure issues derived from the statistics
	Issues []string
}

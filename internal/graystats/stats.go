// Package graystats computes intensity statistics over strided 8-bit
// grayscale pixel buffers, the kind handed across a native boundary by a
// mobile camera pipeline (each row may carry alignment padding beyond the
// valid samples).
package graystats

import "math"

// Result holds the mean and population standard deviation of a grayscale
// region. Values are narrowed to float32 to match the native call contract.
type Result struct {
	Mean   float32 `json:"mean"`
	StdDev float32 `json:"stddev"`
}

// ProcessGray computes the mean and population standard deviation of the
// width x height region of data, where consecutive rows start rowStride
// bytes apart. Padding bytes between width and rowStride are never read.
//
// Degenerate parameters (nil data, width <= 0, height <= 0, rowStride <= 0)
// yield the zero Result rather than an error; callers wanting strict
// validation should construct a Buffer instead.
//
// The computation makes two full passes: the first accumulates the sample
// sum in float64 to derive the mean, the second accumulates squared
// deviations from that final mean. Deviations against the final mean avoid
// the drift of single-pass online variance at the cost of reading the data
// twice.
func ProcessGray(data []byte, width, height, rowStride int32) Result {
	if data == nil || width <= 0 || height <= 0 || rowStride <= 0 {
		return Result{}
	}

	w := int64(width)
	stride := int64(rowStride)
	n := float64(w * int64(height))

	var sum float64
	for y := int64(0); y < int64(height); y++ {
		row := data[y*stride : y*stride+w]
		for _, s := range row {
			sum += float64(s)
		}
	}
	mean := sum / n

	var sqDev float64
	for y := int64(0); y < int64(height); y++ {
		row := data[y*stride : y*stride+w]
		for _, s := range row {
			d := float64(s) - mean
			sqDev += d * d
		}
	}

	return Result{
		Mean:   float32(mean),
		StdDev: float32(math.Sqrt(sqDev / n)),
	}
}

package graystats

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrNilData indicates a nil backing slice.
	ErrNilData = errors.New("graystats: nil pixel data")

	// ErrNonPositiveDim indicates a width, height or stride of zero or less.
	ErrNonPositiveDim = errors.New("graystats: width, height and rowStride must be positive")

	// ErrStrideTooSmall indicates rowStride < width, which would make rows overlap.
	ErrStrideTooSmall = errors.New("graystats: rowStride smaller than width")

	// ErrShortBuffer indicates the data slice cannot hold the described region.
	ErrShortBuffer = errors.New("graystats: buffer too short for geometry")
)

// Buffer is a validated read-only view over a strided grayscale region.
// Construction checks the geometry once, so every later access is in bounds;
// it is the strict alternative to the sentinel-returning ProcessGray.
type Buffer struct {
	data      []byte
	width     int32
	height    int32
	rowStride int32
}

// NewBuffer wraps data as a width x height grayscale view with the given
// row stride. It rejects geometry that ProcessGray would either silently
// zero out or panic on.
func NewBuffer(data []byte, width, height, rowStride int32) (*Buffer, error) {
	if data == nil {
		return nil, ErrNilData
	}
	if width <= 0 || height <= 0 || rowStride <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d stride %d", ErrNonPositiveDim, width, height, rowStride)
	}
	if rowStride < width {
		return nil, fmt.Errorf("%w: stride %d < width %d", ErrStrideTooSmall, rowStride, width)
	}
	need := int64(height-1)*int64(rowStride) + int64(width)
	if int64(len(data)) < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, need, len(data))
	}
	return &Buffer{data: data, width: width, height: height, rowStride: rowStride}, nil
}

// FromGray wraps a stdlib grayscale image without copying its pixels.
// image.Gray stores row-major 8-bit samples with an explicit stride, so it
// maps directly onto the strided buffer model.
func FromGray(img *image.Gray) (*Buffer, error) {
	if img == nil {
		return nil, ErrNilData
	}
	b := img.Bounds()
	return NewBuffer(img.Pix, int32(b.Dx()), int32(b.Dy()), int32(img.Stride))
}

// Width returns the number of valid samples per row.
func (b *Buffer) Width() int32 { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int32 { return b.height }

// RowStride returns the byte distance between consecutive row starts.
func (b *Buffer) RowStride() int32 { return b.rowStride }

// Row returns the valid samples of row y. The returned slice aliases the
// underlying data and must not be mutated.
func (b *Buffer) Row(y int32) []byte {
	off := int64(y) * int64(b.rowStride)
	return b.data[off : off+int64(b.width)]
}

// Stats computes the mean and population standard deviation of the view.
// The geometry was validated at construction, so the sentinel branch in
// ProcessGray is unreachable here.
func (b *Buffer) Stats() Result {
	return ProcessGray(b.data, b.width, b.height, b.rowStride)
}

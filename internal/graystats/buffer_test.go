package graystats

import (
	"errors"
	"image"
	"testing"
)

func TestNewBufferValid(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf, err := NewBuffer(data, 3, 2, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.Width() != 3 || buf.Height() != 2 || buf.RowStride() != 4 {
		t.Errorf("Geometry not preserved: %dx%d stride %d", buf.Width(), buf.Height(), buf.RowStride())
	}
}

func TestNewBufferAcceptsExactLength(t *testing.T) {
	// (height-1)*rowStride + width bytes is the minimum legal length; the
	// final row needs no trailing padding.
	data := make([]byte, 1*4+3)
	if _, err := NewBuffer(data, 3, 2, 4); err != nil {
		t.Errorf("Expected exact-length buffer to validate, got %v", err)
	}
}

func TestNewBufferErrors(t *testing.T) {
	data := make([]byte, 16)

	testCases := []struct {
		name                     string
		data                     []byte
		width, height, rowStride int32
		want                     error
	}{
		{"nil data", nil, 4, 4, 4, ErrNilData},
		{"zero width", data, 0, 4, 4, ErrNonPositiveDim},
		{"negative height", data, 4, -1, 4, ErrNonPositiveDim},
		{"zero stride", data, 4, 4, 0, ErrNonPositiveDim},
		{"stride below width", data, 8, 2, 4, ErrStrideTooSmall},
		{"short buffer", data, 4, 8, 4, ErrShortBuffer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBuffer(tc.data, tc.width, tc.height, tc.rowStride)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBufferStatsMatchesProcessGray(t *testing.T) {
	data := []byte{10, 20, 99, 99, 30, 40, 99, 99}
	buf, err := NewBuffer(data, 2, 2, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := buf.Stats()
	want := ProcessGray(data, 2, 2, 4)
	if got != want {
		t.Errorf("Buffer.Stats %+v differs from ProcessGray %+v", got, want)
	}
}

func TestBufferRow(t *testing.T) {
	data := []byte{10, 20, 99, 99, 30, 40, 99, 99}
	buf, err := NewBuffer(data, 2, 2, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	row := buf.Row(1)
	if len(row) != 2 || row[0] != 30 || row[1] != 40 {
		t.Errorf("Expected row [30 40], got %v", row)
	}
}

func TestFromGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 10)
	}

	buf, err := FromGray(img)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.Width() != 4 || buf.Height() != 3 || buf.RowStride() != int32(img.Stride) {
		t.Errorf("Geometry mismatch: %dx%d stride %d", buf.Width(), buf.Height(), buf.RowStride())
	}

	got := buf.Stats()
	want := ProcessGray(img.Pix, 4, 3, int32(img.Stride))
	if got != want {
		t.Errorf("FromGray stats %+v differ from direct computation %+v", got, want)
	}
}

func TestFromGrayNil(t *testing.T) {
	if _, err := FromGray(nil); !errors.Is(err, ErrNilData) {
		t.Errorf("Expected ErrNilData, got %v", err)
	}
}

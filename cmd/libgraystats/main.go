// Command libgraystats builds the shared library consumed by the mobile
// application's interop layer:
//
//	go build -buildmode=c-shared -o libgraystats.so ./cmd/libgraystats
//
// The exported process_gray mirrors the historical native routine: strided
// 8-bit grayscale buffer in, two floats out by value, zero sentinel for
// degenerate parameters. The caller retains ownership of the buffer and
// must keep it valid and unmodified for the duration of the call.
package main

/*
#include "graystats.h"
*/
import "C"

import (
	"unsafe"

	"go-gray-stats/internal/graystats"
)

//export process_gray
func process_gray(data *C.uint8_t, width, height, rowStride C.int32_t) C.gray_stats_result {
	// Reject degenerate geometry before touching the pointer.
	if data == nil || width <= 0 || height <= 0 || rowStride <= 0 {
		return C.gray_stats_result{}
	}

	// View exactly the extent the two passes may read; the final row needs
	// no trailing padding.
	extent := (int64(height)-1)*int64(rowStride) + int64(width)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), extent)

	r := graystats.ProcessGray(buf, int32(width), int32(height), int32(rowStride))
	return C.gray_stats_result{
		mean:   C.float(r.Mean),
		stddev: C.float(r.StdDev),
	}
}

func main() {}

package waver

import (
	"math"
	"unsafe"
)

// BitDepth is the set of fixed-width integer sample types a Waveform can
// quantize to.
type BitDepth interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bitSize returns the width of T in bits.
func bitSize[T BitDepth]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// maxOf returns the maximum representable value of T.
func maxOf[T BitDepth]() T {
	var zero T
	if ^zero > zero {
		return ^zero
	}
	return T(1)<<(bitSize[T]()-1) - 1
}

// quantize scales x by the maximum magnitude of T and truncates to T.
// It reports false when the scaled value does not fit T's range.
//
// The range check uses exact power-of-two bounds rather than
// float64(maxOf[T]()): at 64-bit widths the converted maximum rounds up to
// the power of two just past the range, and a conversion of such a value
// would wrap instead of halting.
func quantize[T BitDepth](x float64) (T, bool) {
	var zero T
	scaled := math.Trunc(x * float64(maxOf[T]()))

	var lo, hi float64
	if ^zero > zero {
		lo, hi = 0, math.Ldexp(1, int(bitSize[T]()))
	} else {
		hi = math.Ldexp(1, int(bitSize[T]())-1)
		lo = -hi
	}
	if math.IsNaN(scaled) || scaled < lo || scaled >= hi {
		return 0, false
	}
	return T(scaled), true
}

package intcodec

import (
	"fmt"

	"github.com/tmiguelf/charconv/errs"
)

// HexSize returns the number of hex digits needed to represent v with no
// leading zeros (1 for v == 0).
func HexSize[T Unsigned](v T) int {
	vv := uint64(v)
	if vv == 0 {
		return 1
	}
	n := 0
	for vv != 0 {
		vv >>= 4
		n++
	}
	return n
}

// HexSizeFixed returns the fixed-width hex digit count of T: two digits
// per byte, regardless of value (leading zeros included).
func HexSizeFixed[T Unsigned]() int {
	return bitSize[T]() / 4
}

// WriteHexUnsafe writes the uppercase hex digits of v into dst with no
// leading zeros. dst must be at least HexSize(v) units long. It returns
// the remaining, unwritten slice.
func WriteHexUnsafe[T Unsigned, C CharUnit](v T, dst []C) []C {
	vv := uint64(v)
	n := HexSize(v)
	for i := n - 1; i >= 0; i-- {
		dst[i] = C(hexDigitsUpper[vv&0xF])
		vv >>= 4
	}
	return dst[n:]
}

// WriteHexFixedUnsafe writes the uppercase hex digits of v into dst at a
// fixed width (HexSizeFixed[T]()), zero-padded on the left. dst must be at
// least that many units long. It returns the remaining, unwritten slice.
func WriteHexFixedUnsafe[T Unsigned, C CharUnit](v T, dst []C) []C {
	vv := uint64(v)
	n := HexSizeFixed[T]()
	for i := n - 1; i >= 0; i-- {
		dst[i] = C(hexDigitsUpper[vv&0xF])
		vv >>= 4
	}
	return dst[n:]
}

// ParseHexUnsigned parses an unsigned hexadecimal integer from s. Both
// upper and lower case digits are accepted; no "0x" prefix is expected or
// consumed.
func ParseHexUnsigned[T Unsigned, C CharUnit](s []C) (T, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty input", errs.ErrInvalidArgument)
	}
	limit := uint64(maxUnsigned[T]())
	limitDiv, limitMod := limit/16, limit%16

	var acc uint64
	for _, c := range s {
		d, ok := hexDigitValue(c)
		if !ok {
			return 0, fmt.Errorf("%w: non-hex-digit character", errs.ErrInvalidArgument)
		}
		if acc > limitDiv || (acc == limitDiv && d > limitMod) {
			return 0, fmt.Errorf("%w: exceeds destination range", errs.ErrValueTooLarge)
		}
		acc = acc*16 + d
	}
	return T(acc), nil
}

package intcodec

import (
	"fmt"

	"github.com/tmiguelf/charconv/errs"
)

// BinSize returns the number of binary digits needed to represent v with
// no leading zeros (1 for v == 0).
func BinSize[T Unsigned](v T) int {
	vv := uint64(v)
	if vv == 0 {
		return 1
	}
	n := 0
	for vv != 0 {
		vv >>= 1
		n++
	}
	return n
}

// BinSizeFixed returns the fixed-width binary digit count of T: one digit
// per bit, regardless of value.
func BinSizeFixed[T Unsigned]() int {
	return bitSize[T]()
}

// WriteBinUnsafe writes the binary digits of v into dst with no leading
// zeros. dst must be at least BinSize(v) units long. It returns the
// remaining, unwritten slice.
func WriteBinUnsafe[T Unsigned, C CharUnit](v T, dst []C) []C {
	vv := uint64(v)
	n := BinSize(v)
	for i := n - 1; i >= 0; i-- {
		dst[i] = C('0' + vv&1)
		vv >>= 1
	}
	return dst[n:]
}

// WriteBinFixedUnsafe writes the binary digits of v into dst at a fixed
// width (BinSizeFixed[T]()), zero-padded on the left. dst must be at least
// that many units long. It returns the remaining, unwritten slice.
func WriteBinFixedUnsafe[T Unsigned, C CharUnit](v T, dst []C) []C {
	vv := uint64(v)
	n := BinSizeFixed[T]()
	for i := n - 1; i >= 0; i-- {
		dst[i] = C('0' + vv&1)
		vv >>= 1
	}
	return dst[n:]
}

// ParseBinUnsigned parses an unsigned binary integer from s ('0'/'1'
// digits only; no "0b" prefix is expected or consumed).
func ParseBinUnsigned[T Unsigned, C CharUnit](s []C) (T, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty input", errs.ErrInvalidArgument)
	}
	limit := uint64(maxUnsigned[T]())

	var acc uint64
	for _, c := range s {
		d, ok := binDigitValue(c)
		if !ok {
			return 0, fmt.Errorf("%w: non-binary-digit character", errs.ErrInvalidArgument)
		}
		if acc > limit>>1 || (acc == limit>>1 && d > limit&1) {
			return 0, fmt.Errorf("%w: exceeds destination range", errs.ErrValueTooLarge)
		}
		acc = acc<<1 | d
	}
	return T(acc), nil
}

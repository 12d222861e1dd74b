package intcodec

import (
	"fmt"

	"github.com/tmiguelf/charconv/errs"
)

// DecSize returns the number of decimal digits needed to represent v,
// with no sign and no leading zeros (1 for v == 0).
func DecSize[T Unsigned](v T) int {
	return decDigitCount(uint64(v))
}

func decDigitCount(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// DecSizeSigned returns the number of character units needed to represent
// v in decimal, including a leading '-' for negative values.
func DecSizeSigned[T Signed](v T) int {
	vv := int64(v)
	if vv < 0 {
		return 1 + decDigitCount(negMagnitude(vv))
	}
	return decDigitCount(uint64(vv))
}

// negMagnitude returns |v| as a uint64 for v < 0, without overflowing when
// v is the minimum representable int64.
func negMagnitude(v int64) uint64 {
	return uint64(-(v + 1)) + 1
}

// WriteDecUnsafe writes the decimal digits of v into dst, most-significant
// digit first, with no sign and no leading zeros. dst must be at least
// DecSize(v) units long. It returns the remaining, unwritten slice.
func WriteDecUnsafe[T Unsigned, C CharUnit](v T, dst []C) []C {
	return writeDecDigits(uint64(v), dst)
}

// WriteDecSignedUnsafe writes the decimal representation of v, including a
// leading '-' for negative values, into dst. dst must be at least
// DecSizeSigned(v) units long. It returns the remaining, unwritten slice.
func WriteDecSignedUnsafe[T Signed, C CharUnit](v T, dst []C) []C {
	vv := int64(v)
	if vv < 0 {
		dst[0] = C('-')
		return writeDecDigits(negMagnitude(vv), dst[1:])
	}
	return writeDecDigits(uint64(vv), dst)
}

func writeDecDigits[C CharUnit](v uint64, dst []C) []C {
	n := decDigitCount(v)
	for i := n - 1; i >= 0; i-- {
		dst[i] = C('0' + v%10)
		v /= 10
	}
	return dst[n:]
}

// ParseDecUnsigned parses an unsigned decimal integer from s with no sign,
// no leading/trailing whitespace, and no grouping separators.
func ParseDecUnsigned[T Unsigned, C CharUnit](s []C) (T, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty input", errs.ErrInvalidArgument)
	}
	limit := uint64(maxUnsigned[T]())
	limitDiv, limitMod := limit/10, limit%10

	var acc uint64
	for _, c := range s {
		d, ok := decDigitValue(c)
		if !ok {
			return 0, fmt.Errorf("%w: non-digit character", errs.ErrInvalidArgument)
		}
		if acc > limitDiv || (acc == limitDiv && d > limitMod) {
			return 0, fmt.Errorf("%w: exceeds destination range", errs.ErrValueTooLarge)
		}
		acc = acc*10 + d
	}
	return T(acc), nil
}

// ParseDecSigned parses a signed decimal integer from s. An optional
// leading '+' or '-' is accepted; a sign with no following digit is
// rejected as invalid.
func ParseDecSigned[T Signed, C CharUnit](s []C) (T, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty input", errs.ErrInvalidArgument)
	}

	neg := false
	idx := 0
	switch uint32(s[0]) {
	case '-':
		neg = true
		idx = 1
	case '+':
		idx = 1
	}
	if idx >= len(s) {
		return 0, fmt.Errorf("%w: sign with no digits", errs.ErrInvalidArgument)
	}

	limit := magnitudeLimit[T](neg)
	limitDiv, limitMod := limit/10, limit%10

	var acc uint64
	for _, c := range s[idx:] {
		d, ok := decDigitValue(c)
		if !ok {
			return 0, fmt.Errorf("%w: non-digit character", errs.ErrInvalidArgument)
		}
		if acc > limitDiv || (acc == limitDiv && d > limitMod) {
			return 0, fmt.Errorf("%w: exceeds destination range", errs.ErrValueTooLarge)
		}
		acc = acc*10 + d
	}

	if neg {
		return T(-int64(acc)), nil
	}
	return T(acc), nil
}

package fpcodec

import "github.com/tmiguelf/charconv/intcodec"

// digitAt returns the decimal digit of mantissa at position pos counting
// up from the least-significant digit (0-based), given mantissa has
// sigDigits digits total.
func digitAt(mantissa uint64, sigDigits, pos int) byte {
	if pos < 0 || pos >= sigDigits {
		return '0'
	}
	for i := 0; i < pos; i++ {
		mantissa /= 10
	}
	return byte('0' + mantissa%10)
}

// WriteShortestSciUnsafe writes c in scientific notation (one leading
// digit, an optional fractional part, "E", a signed exponent) into dst,
// which must be at least SizeShortestSci(c) units. It returns the
// remaining, unwritten slice.
func WriteShortestSciUnsafe[C intcodec.CharUnit](c Classification, dst []C) []C {
	if c.Negative {
		dst[0] = C('-')
		dst = dst[1:]
	}
	dst[0] = C(digitAt(c.Mantissa, c.SigDigits, c.SigDigits-1))
	dst = dst[1:]
	if c.SigDigits > 1 {
		dst[0] = C('.')
		dst = dst[1:]
		for i := c.SigDigits - 2; i >= 0; i-- {
			dst[0] = C(digitAt(c.Mantissa, c.SigDigits, i))
			dst = dst[1:]
		}
	}
	dst[0] = C('E')
	dst = dst[1:]
	return intcodec.WriteDecSignedUnsafe(int32(c.adjustedExp10()), dst)
}

// WriteShortestFixedUnsafe writes c in fixed (non-exponential) notation
// into dst, which must be at least SizeShortestFixed(c) units. It returns
// the remaining, unwritten slice.
func WriteShortestFixedUnsafe[C intcodec.CharUnit](c Classification, dst []C) []C {
	if c.Negative {
		dst[0] = C('-')
		dst = dst[1:]
	}

	switch {
	case c.Exp10 >= 0:
		for i := c.SigDigits - 1; i >= 0; i-- {
			dst[0] = C(digitAt(c.Mantissa, c.SigDigits, i))
			dst = dst[1:]
		}
		for i := 0; i < c.Exp10; i++ {
			dst[0] = C('0')
			dst = dst[1:]
		}
	case -c.Exp10 >= c.SigDigits:
		dst[0] = C('0')
		dst[1] = C('.')
		dst = dst[2:]
		for i := 0; i < -c.Exp10-c.SigDigits; i++ {
			dst[0] = C('0')
			dst = dst[1:]
		}
		for i := c.SigDigits - 1; i >= 0; i-- {
			dst[0] = C(digitAt(c.Mantissa, c.SigDigits, i))
			dst = dst[1:]
		}
	default:
		intPart := c.SigDigits + c.Exp10 // number of digits before the point
		for i := c.SigDigits - 1; i >= c.SigDigits-intPart; i-- {
			dst[0] = C(digitAt(c.Mantissa, c.SigDigits, i))
			dst = dst[1:]
		}
		dst[0] = C('.')
		dst = dst[1:]
		for i := c.SigDigits - intPart - 1; i >= 0; i-- {
			dst[0] = C(digitAt(c.Mantissa, c.SigDigits, i))
			dst = dst[1:]
		}
	}
	return dst
}

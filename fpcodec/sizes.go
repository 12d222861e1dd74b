package fpcodec

import "github.com/tmiguelf/charconv/intcodec"

// adjustedExp10 returns the scientific-notation exponent: the power of ten
// multiplying the single leading digit, i.e. value == d0.d1d2... * 10^adj.
func (c Classification) adjustedExp10() int {
	return c.Exp10 + c.SigDigits - 1
}

// SizeShortestSci returns the number of character units
// WriteShortestSciUnsafe needs for c (Kind == KindFinite).
func SizeShortestSci(c Classification) int {
	n := 1 // leading digit
	if c.SigDigits > 1 {
		n += 1 + (c.SigDigits - 1) // '.' + remaining digits
	}
	n++ // 'E'
	n += intcodec.DecSizeSigned(int32(c.adjustedExp10()))
	if c.Negative {
		n++
	}
	return n
}

// SizeShortestFixed returns the number of character units
// WriteShortestFixedUnsafe needs for c (Kind == KindFinite).
func SizeShortestFixed(c Classification) int {
	n := 0
	if c.Negative {
		n++
	}
	switch {
	case c.Exp10 >= 0:
		// All digits are integral, plus Exp10 trailing zeros.
		n += c.SigDigits + c.Exp10
	case -c.Exp10 >= c.SigDigits:
		// 0.00...digits - leading zeros after the point absorb the gap.
		n += len("0.") + (-c.Exp10 - c.SigDigits) + c.SigDigits
	default:
		// Digits straddle the decimal point.
		n += c.SigDigits + 1
	}
	return n
}

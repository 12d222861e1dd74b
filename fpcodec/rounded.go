package fpcodec

import (
	"math"

	"github.com/tmiguelf/charconv/bignum"
	"github.com/tmiguelf/charconv/intcodec"
)

// RoundMode selects how a rounded formatter resolves the digits it must
// discard below the requested precision. ToInf and ToNegInf are directed
// modes: they are normalized to ToZero or AwayZero based on the sign of
// the value being formatted before any rounding decision is made.
type RoundMode uint8

const (
	RoundNearest RoundMode = iota // banker's round-half-to-even
	RoundToZero
	RoundAwayZero
	RoundToInf
	RoundToNegInf
)

func normalizeRule(mode RoundMode, negative bool) bignum.RoundRule {
	switch mode {
	case RoundToZero:
		return bignum.RoundDown
	case RoundAwayZero:
		return bignum.RoundUp
	case RoundToInf:
		if negative {
			return bignum.RoundDown
		}
		return bignum.RoundUp
	case RoundToNegInf:
		if negative {
			return bignum.RoundUp
		}
		return bignum.RoundDown
	default:
		return bignum.RoundNearestEven
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// decompose32/decompose64 extract the exact binary value of a finite,
// non-zero float as mantissa * 2^e2 (mantissa including the implicit bit
// for normals), with no Ryu-style headroom adjustment: this is the raw
// value the rounded path needs to materialize exactly, not an interval.
func decompose32(v float32) (negative bool, kind Kind, mantissa uint64, e2 int) {
	bits := math.Float32bits(v)
	negative = bits>>31 != 0
	expBits := int((bits >> mantissaBits32) & (1<<exponentBits32 - 1))
	mantBits := bits & (1<<mantissaBits32 - 1)

	if expBits == 1<<exponentBits32-1 {
		if mantBits != 0 {
			return false, KindNaN, 0, 0
		}
		return negative, KindInf, 0, 0
	}
	if expBits == 0 {
		if mantBits == 0 {
			return negative, KindZero, 0, 0
		}
		return negative, KindFinite, uint64(mantBits), 1 - bias32 - mantissaBits32
	}
	return negative, KindFinite, uint64(mantBits) | (uint64(1) << mantissaBits32), expBits - bias32 - mantissaBits32
}

func decompose64(v float64) (negative bool, kind Kind, mantissa uint64, e2 int) {
	bits := math.Float64bits(v)
	negative = bits>>63 != 0
	expBits := int((bits >> mantissaBits64) & (1<<exponentBits64 - 1))
	mantBits := bits & (1<<mantissaBits64 - 1)

	if expBits == 1<<exponentBits64-1 {
		if mantBits != 0 {
			return false, KindNaN, 0, 0
		}
		return negative, KindInf, 0, 0
	}
	if expBits == 0 {
		if mantBits == 0 {
			return negative, KindZero, 0, 0
		}
		return negative, KindFinite, mantBits, 1 - bias64 - mantissaBits64
	}
	return negative, KindFinite, mantBits | (uint64(1) << mantissaBits64), expBits - bias64 - mantissaBits64
}

// exactDecimal materializes mantissa*2^e2 as an exact base-10 integer.
// For e2 < 0 the value is pre-scaled by 5^|e2|, so the returned Decimal
// equals the true magnitude times 10^|e2|; the second return value is
// that scale (the count of digits that belong after the decimal point).
func exactDecimal(mantissa uint64, e2 int) (bignum.Decimal, int) {
	d := bignum.FromUint64(mantissa)
	if e2 >= 0 {
		d.MulPow2(e2)
		return d, 0
	}
	d.MulPow5(-e2)
	return d, -e2
}

func decDigitAt(d *bignum.Decimal, pos int) byte {
	if pos < 0 {
		return '0'
	}
	return '0' + d.DigitAt(pos)
}

// roundSci rounds dec in place so that exactly sigDigits significant
// digits remain, per rule. No-op if dec already has sigDigits digits
// or fewer of actual precision.
func roundSci(dec *bignum.Decimal, sigDigits int, rule bignum.RoundRule) {
	pos := dec.DigitLength() - sigDigits
	if pos > 0 && pos > dec.TrailingZeroDigits() {
		dec.RoundAt(pos, rule)
	}
}

// roundFixed rounds dec in place so that exactly precision digits remain
// after the decimal point (which sits fracDigits digits from the LSB),
// per rule.
func roundFixed(dec *bignum.Decimal, fracDigits, precision int, rule bignum.RoundRule) {
	pos := fracDigits - precision
	if pos > 0 && pos > dec.TrailingZeroDigits() {
		dec.RoundAt(pos, rule)
	}
}

// RoundedSci is the result of rounding a finite value to a caller-chosen
// number of significant digits, laid out for scientific notation.
type RoundedSci struct {
	Kind      Kind
	Negative  bool
	dec       bignum.Decimal
	sigDigits int
	exp10     int // value == d0.d1d2...*10^exp10
}

// RoundSci32 rounds v to sigDigits significant decimal digits (clamped to
// the type's supported range) for scientific notation.
func RoundSci32(v float32, sigDigits int, mode RoundMode) RoundedSci {
	neg, kind, mantissa, e2 := decompose32(v)
	if kind != KindFinite {
		return RoundedSci{Kind: kind, Negative: neg}
	}
	sigDigits = clampInt(sigDigits, 1, maxRoundedSciDigits32)
	dec, frac := exactDecimal(mantissa, e2)
	roundSci(&dec, sigDigits, normalizeRule(mode, neg))
	return RoundedSci{Kind: KindFinite, Negative: neg, dec: dec, sigDigits: sigDigits, exp10: dec.DigitLength() - 1 - frac}
}

// RoundSci64 is RoundSci32 for binary64.
func RoundSci64(v float64, sigDigits int, mode RoundMode) RoundedSci {
	neg, kind, mantissa, e2 := decompose64(v)
	if kind != KindFinite {
		return RoundedSci{Kind: kind, Negative: neg}
	}
	sigDigits = clampInt(sigDigits, 1, maxRoundedSciDigits64)
	dec, frac := exactDecimal(mantissa, e2)
	roundSci(&dec, sigDigits, normalizeRule(mode, neg))
	return RoundedSci{Kind: KindFinite, Negative: neg, dec: dec, sigDigits: sigDigits, exp10: dec.DigitLength() - 1 - frac}
}

// SizeRoundedSci returns the number of character units
// WriteRoundedSciUnsafe needs for r (Kind == KindFinite).
func SizeRoundedSci(r RoundedSci) int {
	n := r.sigDigits
	if r.sigDigits > 1 {
		n++ // '.'
	}
	n++ // 'E'
	n += intcodec.DecSizeSigned(int32(r.exp10))
	if r.Negative {
		n++
	}
	return n
}

// WriteRoundedSciUnsafe writes r in scientific notation into dst, which
// must be at least SizeRoundedSci(r) units. It returns the remaining,
// unwritten slice.
func WriteRoundedSciUnsafe[C intcodec.CharUnit](r RoundedSci, dst []C) []C {
	if r.Negative {
		dst[0] = C('-')
		dst = dst[1:]
	}
	top := r.dec.DigitLength() - 1
	dst[0] = C(decDigitAt(&r.dec, top))
	dst = dst[1:]
	if r.sigDigits > 1 {
		dst[0] = C('.')
		dst = dst[1:]
		for i := 1; i < r.sigDigits; i++ {
			dst[0] = C(decDigitAt(&r.dec, top-i))
			dst = dst[1:]
		}
	}
	dst[0] = C('E')
	dst = dst[1:]
	return intcodec.WriteDecSignedUnsafe(int32(r.exp10), dst)
}

// RoundedFixed is the result of rounding a finite value to a caller-chosen
// number of fractional digits, laid out for fixed-point notation.
type RoundedFixed struct {
	Kind       Kind
	Negative   bool
	dec        bignum.Decimal
	fracDigits int // decimal point position, digits from the LSB
	precision  int // fractional digits to print (clamped request)
}

// RoundFixed32 rounds v to precision fractional decimal digits (clamped
// to the type's supported range; may be negative to round within the
// integral part).
func RoundFixed32(v float32, precision int, mode RoundMode) RoundedFixed {
	neg, kind, mantissa, e2 := decompose32(v)
	if kind != KindFinite {
		return RoundedFixed{Kind: kind, Negative: neg}
	}
	precision = clampInt(precision, -maxFixedUnitDigits32, maxFixedDecimalDigits32)
	dec, frac := exactDecimal(mantissa, e2)
	roundFixed(&dec, frac, precision, normalizeRule(mode, neg))
	return RoundedFixed{Kind: KindFinite, Negative: neg, dec: dec, fracDigits: frac, precision: precision}
}

// RoundFixed64 is RoundFixed32 for binary64.
func RoundFixed64(v float64, precision int, mode RoundMode) RoundedFixed {
	neg, kind, mantissa, e2 := decompose64(v)
	if kind != KindFinite {
		return RoundedFixed{Kind: kind, Negative: neg}
	}
	precision = clampInt(precision, -maxFixedUnitDigits64, maxFixedDecimalDigits64)
	dec, frac := exactDecimal(mantissa, e2)
	roundFixed(&dec, frac, precision, normalizeRule(mode, neg))
	return RoundedFixed{Kind: KindFinite, Negative: neg, dec: dec, fracDigits: frac, precision: precision}
}

func (r RoundedFixed) unitDigits() int {
	n := r.dec.DigitLength() - r.fracDigits
	if n < 1 {
		return 1 // caller renders a leading '0'
	}
	return n
}

// SizeRoundedFixed returns the number of character units
// WriteRoundedFixedUnsafe needs for r (Kind == KindFinite).
func SizeRoundedFixed(r RoundedFixed) int {
	n := r.unitDigits()
	if r.precision > 0 {
		n += 1 + r.precision // '.' + fractional digits
	}
	if r.Negative {
		n++
	}
	return n
}

// WriteRoundedFixedUnsafe writes r in fixed-point notation into dst,
// which must be at least SizeRoundedFixed(r) units. It returns the
// remaining, unwritten slice.
func WriteRoundedFixedUnsafe[C intcodec.CharUnit](r RoundedFixed, dst []C) []C {
	if r.Negative {
		dst[0] = C('-')
		dst = dst[1:]
	}
	unitDigits := r.unitDigits()
	for i := unitDigits - 1; i >= 0; i-- {
		dst[0] = C(decDigitAt(&r.dec, r.fracDigits+i))
		dst = dst[1:]
	}
	if r.precision > 0 {
		dst[0] = C('.')
		dst = dst[1:]
		for i := 0; i < r.precision; i++ {
			dst[0] = C(decDigitAt(&r.dec, r.fracDigits-1-i))
			dst = dst[1:]
		}
	}
	return dst
}

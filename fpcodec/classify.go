package fpcodec

import "math"

// Kind classifies the category of value Classify found.
type Kind uint8

const (
	KindZero Kind = iota
	KindFinite
	KindInf
	KindNaN
)

// Classification is the result of Classify: the shortest decimal mantissa
// and base-10 exponent such that mantissa * 10^exp10 round-trips back to
// the original binary value, plus enough information to format it.
type Classification struct {
	Kind      Kind
	Negative  bool
	Mantissa  uint64 // shortest round-trip digits, no leading/trailing zeros
	Exp10     int    // decimal exponent: value == Mantissa * 10^Exp10 (Kind == KindFinite)
	SigDigits int    // number of decimal digits in Mantissa
}

func sigDigits(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

var float32Bounds = ryuBounds{q5ExactBound: 9, q2ExactBound: 31, tightQ: false}
var float64Bounds = ryuBounds{q5ExactBound: 21, q2ExactBound: 63, tightQ: true}

// ClassifyFloat32 classifies v and, for finite non-zero values, computes
// its shortest round-trip decimal representation.
func ClassifyFloat32(v float32) Classification {
	bits := math.Float32bits(v)
	sign := bits>>31 != 0
	expBits := int((bits >> mantissaBits32) & (1<<exponentBits32 - 1))
	mantBits := bits & (1<<mantissaBits32 - 1)

	if expBits == 1<<exponentBits32-1 {
		if mantBits != 0 {
			return Classification{Kind: KindNaN}
		}
		return Classification{Kind: KindInf, Negative: sign}
	}

	var exponent int
	var mantissa uint64
	if expBits != 0 {
		exponent = expBits - bias32 - mantissaBits32
		mantissa = uint64(mantBits) | (uint64(1) << mantissaBits32)
	} else {
		if mantBits == 0 {
			return Classification{Kind: KindZero, Negative: sign}
		}
		exponent = 1 - bias32 - mantissaBits32
		mantissa = uint64(mantBits)
	}

	e2 := exponent - 2
	acceptBounds := mantissa&1 == 0
	mmShift := mantBits != 0 || expBits <= 1

	out, exp10 := classifyShortest(mantissa, e2, acceptBounds, mmShift, float32Bounds)
	return Classification{
		Kind:      KindFinite,
		Negative:  sign,
		Mantissa:  out,
		Exp10:     exp10,
		SigDigits: sigDigits(out),
	}
}

// ClassifyFloat64 classifies v and, for finite non-zero values, computes
// its shortest round-trip decimal representation.
func ClassifyFloat64(v float64) Classification {
	bits := math.Float64bits(v)
	sign := bits>>63 != 0
	expBits := int((bits >> mantissaBits64) & (1<<exponentBits64 - 1))
	mantBits := bits & (1<<mantissaBits64 - 1)

	if expBits == 1<<exponentBits64-1 {
		if mantBits != 0 {
			return Classification{Kind: KindNaN}
		}
		return Classification{Kind: KindInf, Negative: sign}
	}

	var exponent int
	var mantissa uint64
	if expBits != 0 {
		exponent = expBits - bias64 - mantissaBits64
		mantissa = mantBits | (uint64(1) << mantissaBits64)
	} else {
		if mantBits == 0 {
			return Classification{Kind: KindZero, Negative: sign}
		}
		exponent = 1 - bias64 - mantissaBits64
		mantissa = mantBits
	}

	e2 := exponent - 2
	acceptBounds := mantissa&1 == 0
	mmShift := mantBits != 0 || expBits <= 1

	out, exp10 := classifyShortest(mantissa, e2, acceptBounds, mmShift, float64Bounds)
	return Classification{
		Kind:      KindFinite,
		Negative:  sign,
		Mantissa:  out,
		Exp10:     exp10,
		SigDigits: sigDigits(out),
	}
}

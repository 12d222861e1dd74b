package fpcodec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tmiguelf/charconv/errs"
)

// ParseFP32 converts pre-tokenized decimal components into the nearest
// binary32 value, rounding half-to-even. units and decimal hold ASCII
// digit substrings (either may be empty, never both); exp holds the
// exponent's ASCII digit substring (empty means an exponent of 0).
//
// Rather than the fixed-width Ryu inverse tables, this builds the exact
// rational value of the input with math/big and lets big.Rat.Float32
// perform the correctly-rounded conversion: the observable contract
// (correctly rounded, ties-to-even) is identical, computed exactly
// instead of via precomputed split tables.
func ParseFP32(sign bool, units, decimal []byte, expNegative bool, exp []byte) (float32, error) {
	v, kind, err := parseDecimalRat(units, decimal, expNegative, exp, parseMaxSciExponent32, parseMinSciExponent32)
	if err != nil {
		return 0, err
	}
	switch kind {
	case parsedZero:
		return signedZero32(sign), nil
	case parsedInf:
		return signedInf32(sign), nil
	}
	f, _ := v.Float32()
	if sign {
		f = -f
	}
	return f, nil
}

// ParseFP64 is ParseFP32 for binary64.
func ParseFP64(sign bool, units, decimal []byte, expNegative bool, exp []byte) (float64, error) {
	v, kind, err := parseDecimalRat(units, decimal, expNegative, exp, parseMaxSciExponent64, parseMinSciExponent64)
	if err != nil {
		return 0, err
	}
	switch kind {
	case parsedZero:
		return signedZero64(sign), nil
	case parsedInf:
		return signedInf64(sign), nil
	}
	f, _ := v.Float64()
	if sign {
		f = -f
	}
	return f, nil
}

type parsedKind uint8

const (
	parsedFinite parsedKind = iota
	parsedZero
	parsedInf
)

func pow10Big(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// parseDecimalRat validates and combines the digit substrings into an
// exact rational value, after clamping the adjusted scientific exponent
// against the type's representable range.
func parseDecimalRat(units, decimal []byte, expNegative bool, exp []byte, maxSciExp, minSciExp int) (*big.Rat, parsedKind, error) {
	if len(units) == 0 && len(decimal) == 0 {
		return nil, 0, fmt.Errorf("%w: fp literal has no digits", errs.ErrInvalidArgument)
	}
	if err := checkAllDigits(units); err != nil {
		return nil, 0, err
	}
	if err := checkAllDigits(decimal); err != nil {
		return nil, 0, err
	}
	if err := checkAllDigits(exp); err != nil {
		return nil, 0, err
	}

	digits := make([]byte, 0, len(units)+len(decimal))
	digits = append(digits, units...)
	digits = append(digits, decimal...)

	allZero := true
	for _, c := range digits {
		if c != '0' {
			allZero = false
			break
		}
	}

	n := new(big.Int)
	if len(digits) > 0 {
		n.SetString(string(digits), 10)
	}

	expValue := parseExponentSaturating(expNegative, exp)
	e10 := expValue - len(decimal)

	if allZero {
		return nil, parsedZero, nil
	}

	sigDigits := len(digits)
	for i := 0; i < len(digits) && digits[i] == '0'; i++ {
		sigDigits--
	}
	adjustedSciExp := e10 + sigDigits - 1

	if adjustedSciExp > maxSciExp {
		return nil, parsedInf, nil
	}
	if adjustedSciExp < minSciExp {
		return nil, parsedZero, nil
	}

	var num, den *big.Int
	if e10 >= 0 {
		num = new(big.Int).Mul(n, pow10Big(e10))
		den = big.NewInt(1)
	} else {
		num = n
		den = pow10Big(-e10)
	}
	return new(big.Rat).SetFrac(num, den), parsedFinite, nil
}

func checkAllDigits(s []byte) error {
	for _, c := range s {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: non-digit character %q in fp literal", errs.ErrInvalidArgument, c)
		}
	}
	return nil
}

// parseExponentSaturating parses exp (ASCII digits, may be empty meaning
// 0) applying sign, saturating at a bound far beyond anything that could
// still leave the adjusted scientific exponent within a type's
// representable range; this keeps the big.Int work below bounded even
// for adversarially long exponent literals.
func parseExponentSaturating(negative bool, exp []byte) int {
	const satBound = 1 << 30
	v := 0
	for _, c := range exp {
		if v > satBound {
			continue
		}
		v = v*10 + int(c-'0')
	}
	if v > satBound {
		v = satBound
	}
	if negative {
		return -v
	}
	return v
}

func signedZero32(negative bool) float32 {
	if negative {
		return float32(math.Copysign(0, -1))
	}
	return 0
}

func signedZero64(negative bool) float64 {
	if negative {
		return math.Copysign(0, -1)
	}
	return 0
}

func signedInf32(negative bool) float32 {
	return float32(math.Inf(signOf(negative)))
}

func signedInf64(negative bool) float64 {
	return math.Inf(signOf(negative))
}

func signOf(negative bool) int {
	if negative {
		return -1
	}
	return 1
}

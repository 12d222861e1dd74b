package fpcodec

import (
	"fmt"
	"math"
	"strings"

	"github.com/tmiguelf/charconv/errs"
)

var quietNaN = math.NaN()

// Parse32 tokenizes text as a binary32 literal and converts it to the
// nearest representable value. It recognizes an optional leading sign,
// decimal digits with an optional '.' and an optional 'e'/'E' exponent,
// and the case-insensitive special tokens "inf", "infinity" and "nan"
// (optionally followed by a "(...)" payload, which is accepted but
// ignored — this core does not distinguish signalling from quiet NaNs).
func Parse32(text []byte) (float32, error) {
	sign, units, decimal, expNeg, exp, special, negSpecial, err := tokenizeFP(text)
	if err != nil {
		return 0, err
	}
	switch special {
	case specialNaN:
		return float32(nan()), nil
	case specialInf:
		return signedInf32(negSpecial), nil
	}
	return ParseFP32(sign, units, decimal, expNeg, exp)
}

// Parse64 is Parse32 for binary64.
func Parse64(text []byte) (float64, error) {
	sign, units, decimal, expNeg, exp, special, negSpecial, err := tokenizeFP(text)
	if err != nil {
		return 0, err
	}
	switch special {
	case specialNaN:
		return nan(), nil
	case specialInf:
		return signedInf64(negSpecial), nil
	}
	return ParseFP64(sign, units, decimal, expNeg, exp)
}

type specialToken uint8

const (
	specialNone specialToken = iota
	specialNaN
	specialInf
)

func tokenizeFP(text []byte) (sign bool, units, decimal []byte, expNeg bool, exp []byte, special specialToken, negSpecial bool, err error) {
	s := text
	if len(s) == 0 {
		return false, nil, nil, false, nil, specialNone, false, fmt.Errorf("%w: empty fp literal", errs.ErrInvalidArgument)
	}
	if s[0] == '+' || s[0] == '-' {
		sign = s[0] == '-'
		s = s[1:]
	}
	negSpecial = sign

	rest := strings.ToLower(string(s))
	switch {
	case strings.HasPrefix(rest, "infinity"), strings.HasPrefix(rest, "inf"):
		return sign, nil, nil, false, nil, specialInf, negSpecial, nil
	case strings.HasPrefix(rest, "nan"):
		return sign, nil, nil, false, nil, specialNaN, negSpecial, nil
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	units = s[:i]
	s = s[i:]

	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		j := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		decimal = s[:j]
		s = s[j:]
	}

	if len(units) == 0 && len(decimal) == 0 {
		return false, nil, nil, false, nil, specialNone, false, fmt.Errorf("%w: fp literal has no digits", errs.ErrInvalidArgument)
	}

	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			expNeg = s[0] == '-'
			s = s[1:]
		}
		k := 0
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k == 0 {
			return false, nil, nil, false, nil, specialNone, false, fmt.Errorf("%w: exponent marker with no digits", errs.ErrInvalidArgument)
		}
		exp = s[:k]
		s = s[k:]
	}

	if len(s) != 0 {
		return false, nil, nil, false, nil, specialNone, false, fmt.Errorf("%w: trailing characters in fp literal", errs.ErrInvalidArgument)
	}

	return sign, units, decimal, expNeg, exp, specialNone, negSpecial, nil
}

func nan() float64 {
	return quietNaN
}

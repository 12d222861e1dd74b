package fpcodec

import "math/big"

var bigTen = big.NewInt(10)
var bigFive = big.NewInt(5)

// big5Pow returns 5^e as a *big.Int.
func big5Pow(e int) *big.Int {
	return new(big.Int).Exp(bigFive, big.NewInt(int64(e)), nil)
}

// scaleDiv computes the exact digit integer Ryu's fixed-width lookup
// tables (DOUBLE_POW5_SPLIT etc.) exist purely to approximate quickly:
//
//   - e2 >= 0: floor(m * 2^e2 / 10^q)
//   - e2 <  0: floor(m * 5^(-e2) / 10^q), since
//     m * 2^e2 = m * 5^(-e2) / 10^(-e2), and q <= -e2 here, so dividing by
//     10^q instead of 10^(-e2) leaves the 5^(-e2) factor in the numerator.
//
// Computed here with exact arbitrary-precision arithmetic, it needs no
// precision bookkeeping of its own.
func scaleDiv(m uint64, e2 int, q int) uint64 {
	num := new(big.Int).SetUint64(m)
	if e2 >= 0 {
		num.Lsh(num, uint(e2))
	} else {
		num.Mul(num, big5Pow(-e2))
	}
	den := new(big.Int).Exp(bigTen, big.NewInt(int64(q)), nil)
	num.Quo(num, den)
	return num.Uint64()
}

// ryuBounds holds the per-width thresholds the exactness checks below use;
// they scale with how many decimal digits q can plausibly reach for a
// mantissa of the given bit width.
type ryuBounds struct {
	q5ExactBound int  // e2 >= 0 branch: above this q, no multiple-of-5 check is attempted
	q2ExactBound int  // e2 <  0 branch: at or above this q, no multiple-of-2 check is attempted
	tightQ       bool // double-only micro-adjustment: shave one off the initial q estimate
}

// classifyShortest implements Ryu's shortest-interval search: given the
// binary value m2*2^e2 (e2 already adjusted down by 2 so the interval
// bounds computation below has two spare bits of headroom) and whether the
// interval bounds are themselves valid outputs (acceptBounds) and whether
// the lower bound needs an extra unit shaved off (mmShift), it returns the
// shortest decimal mantissa and exponent that round-trips back to m2*2^e2.
func classifyShortest(m2 uint64, e2 int, acceptBounds, mmShift bool, b ryuBounds) (mantissa uint64, exp10 int) {
	mMid := 4 * m2
	mHi := mMid + 2
	var mLo uint64
	if mmShift {
		mLo = mMid - 2
	} else {
		mLo = mMid - 1
	}

	var vMid, vHi, vLo uint64
	var e10 int
	vloIsTrailingZeros := false
	vmdIsTrailingZeros := false
	ne2 := -e2

	if e2 >= 0 {
		q := log10Pow2(e2)
		if b.tightQ && e2 > 3 {
			q--
		}
		if q < 0 {
			q = 0
		}
		e10 = q

		vMid = scaleDiv(mMid, e2, q)
		vHi = scaleDiv(mHi, e2, q)
		vLo = scaleDiv(mLo, e2, q)

		if q <= b.q5ExactBound {
			switch {
			case mMid%5 == 0:
				vmdIsTrailingZeros = multipleOfPowerOf5(mMid, q)
			case acceptBounds:
				vloIsTrailingZeros = multipleOfPowerOf5(mLo, q)
			default:
				if multipleOfPowerOf5(mHi, q) {
					vHi--
				}
			}
		}
	} else {
		q := log10Pow5(ne2)
		if b.tightQ && ne2 > 1 {
			q--
		}
		if q < 0 {
			q = 0
		}
		e10 = q + e2

		vMid = scaleDiv(mMid, e2, q)
		vHi = scaleDiv(mHi, e2, q)
		vLo = scaleDiv(mLo, e2, q)

		if q <= 1 {
			vmdIsTrailingZeros = true
			if acceptBounds {
				vloIsTrailingZeros = mmShift
			} else {
				vHi--
			}
		} else if q < b.q2ExactBound {
			vmdIsTrailingZeros = multipleOfPowerOf2(mMid, q)
		}
	}

	var lastRemovedDigit uint64
	var output uint64

	if vloIsTrailingZeros || vmdIsTrailingZeros {
		for {
			vpDiv10 := vHi / 10
			vmDiv10 := vLo / 10
			if vpDiv10 <= vmDiv10 {
				break
			}
			vmMod10 := vLo % 10
			vrDiv10 := vMid / 10
			vrMod10 := vMid % 10
			vloIsTrailingZeros = vloIsTrailingZeros && vmMod10 == 0
			vmdIsTrailingZeros = vmdIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = vrMod10
			vMid = vrDiv10
			vHi = vpDiv10
			vLo = vmDiv10
			e10++
		}
		if vloIsTrailingZeros {
			for vLo%10 == 0 {
				vmDiv10 := vLo / 10
				vrDiv10 := vMid / 10
				vrMod10 := vMid % 10
				vmdIsTrailingZeros = vmdIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = vrMod10
				vMid = vrDiv10
				vHi = vHi / 10
				vLo = vmDiv10
				e10++
			}
		}
		if vmdIsTrailingZeros && lastRemovedDigit == 5 && vMid%2 == 0 {
			lastRemovedDigit = 4
		}
		output = vMid + boolToInt((vMid == vLo && (!acceptBounds || !vloIsTrailingZeros)) || lastRemovedDigit >= 5)
	} else {
		for {
			vpDiv10 := vHi / 10
			vmDiv10 := vLo / 10
			if vpDiv10 <= vmDiv10 {
				break
			}
			lastRemovedDigit = vMid % 10
			vMid /= 10
			vLo = vmDiv10
			vHi = vpDiv10
			e10++
		}
		output = vMid + boolToInt(vMid == vLo || lastRemovedDigit >= 5)
	}

	return output, e10
}

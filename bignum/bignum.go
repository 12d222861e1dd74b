// Package bignum implements the small multi-limb decimal arithmetic used
// by fpcodec's precision-bounded formatter.
//
// It is not a general big-integer library. It is a fixed-width, base-10^19
// representation optimized for exactly the operations the rounded
// floating-point path needs: multiply the whole value by a small factor
// (a chunk of a power of 2 or power of 5), read a single decimal digit at
// an arbitrary position, and round the value at an arbitrary decimal
// position under one of three primitive rounding rules. There is no
// growable backing store: every Decimal is a fixed-size array value that
// can live on the stack.
package bignum

import "math/bits"

const (
	// limbBase is the radix of each limb: every limb holds a value in
	// [0, limbBase). 10^19 is the largest power of ten that still fits in
	// a uint64 (max uint64 is ~1.8446e19).
	limbBase uint64 = 10_000_000_000_000_000_000
	// limbDigits is the number of decimal digits a fully-populated limb
	// holds.
	limbDigits = 19
	// maxLimbs covers binary64's worst case (a subnormal's exact decimal
	// expansion needs about 41 limbs, per the type's bignum limb count in
	// the data model) plus one spare limb to absorb a round-up carry that
	// ripples past the most significant limb (the "0.999...9 rounds up to
	// a new leading digit" edge case). binary32's 6-limb requirement fits
	// comfortably in the same fixed array; the unused capacity is the
	// price of sharing one Decimal type across both widths instead of
	// hand-duplicating it per type.
	maxLimbs = 42
)

var pow10 [limbDigits + 1]uint64 // pow10[i] == 10^i, i in [0, 19]

func init() {
	pow10[0] = 1
	for i := 1; i < len(pow10); i++ {
		pow10[i] = pow10[i-1] * 10
	}
}

// Decimal is an unsigned arbitrary-magnitude integer stored as little-endian
// base-10^19 limbs in a fixed-size array. The zero value is not a valid
// Decimal; use FromUint64 to construct one.
type Decimal struct {
	limb [maxLimbs]uint64
	n    int // number of limbs in use; limb[0:n], always n >= 1
}

// FromUint64 builds a Decimal holding the exact value of v.
func FromUint64(v uint64) Decimal {
	var d Decimal
	d.limb[0] = v % limbBase
	hi := v / limbBase
	if hi != 0 {
		d.limb[1] = hi
		d.n = 2
		return d
	}
	d.n = 1
	return d
}

// MulPow2 multiplies the value in place by 2^e. e must be >= 0.
func (d *Decimal) MulPow2(e int) {
	const chunk = 63 // 2^63 is the largest power of two below limbBase
	for e > 0 {
		k := e
		if k > chunk {
			k = chunk
		}
		d.mulSmall(uint64(1) << uint(k))
		e -= k
	}
}

// MulPow5 multiplies the value in place by 5^e. e must be >= 0.
func (d *Decimal) MulPow5(e int) {
	const chunk = 27 // 5^27 is the largest power of five below limbBase
	for e > 0 {
		k := e
		if k > chunk {
			k = chunk
		}
		d.mulSmall(pow5Chunk[k])
		e -= k
	}
}

var pow5Chunk [28]uint64

func init() {
	pow5Chunk[0] = 1
	for i := 1; i < len(pow5Chunk); i++ {
		pow5Chunk[i] = pow5Chunk[i-1] * 5
	}
}

// mulSmall multiplies the whole value by factor, which must be < limbBase
// (every caller in this package only ever passes a power-of-2 or power-of-5
// chunk sized to that bound).
func (d *Decimal) mulSmall(factor uint64) {
	var carry uint64
	for i := 0; i < d.n; i++ {
		hi, lo := bits.Mul64(d.limb[i], factor)
		lo, c := bits.Add64(lo, carry, 0)
		hi += c
		q, r := bits.Div64(hi, lo, limbBase)
		d.limb[i] = r
		carry = q
	}
	for carry != 0 {
		if d.n >= maxLimbs {
			panic("bignum: Decimal overflowed its fixed capacity")
		}
		d.limb[d.n] = carry % limbBase
		carry /= limbBase
		d.n++
	}
}

// digitsInLimb returns the decimal digit count of v, which must be < limbBase.
func digitsInLimb(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// topLimb returns the index of the most significant non-zero limb, or -1 if
// the value is exactly zero.
func (d *Decimal) topLimb() int {
	for i := d.n - 1; i >= 0; i-- {
		if d.limb[i] != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether the represented value is exactly zero.
func (d *Decimal) IsZero() bool {
	return d.topLimb() < 0
}

// DigitLength returns the number of significant decimal digits in the
// represented value (1 for a value of zero).
func (d *Decimal) DigitLength() int {
	top := d.topLimb()
	if top < 0 {
		return 1
	}
	return top*limbDigits + digitsInLimb(d.limb[top])
}

// TrailingZeroDigits returns the number of consecutive zero digits counting
// up from the least-significant digit (the "leading_zeros" count of
// §4.2.4). A value of exactly zero reports its own digit length.
func (d *Decimal) TrailingZeroDigits() int {
	idx := 0
	for idx < d.n && d.limb[idx] == 0 {
		idx++
	}
	if idx == d.n {
		return d.DigitLength()
	}
	count := idx * limbDigits
	v := d.limb[idx]
	for v%10 == 0 {
		v /= 10
		count++
	}
	return count
}

// DigitAt returns the decimal digit at position pos, counting up from the
// least-significant digit at position 0. Positions beyond the represented
// magnitude read as 0.
func (d *Decimal) DigitAt(pos int) uint8 {
	limbIdx := pos / limbDigits
	if limbIdx >= d.n {
		return 0
	}
	within := pos % limbDigits
	return uint8((d.limb[limbIdx] / pow10[within]) % 10)
}

// allZeroBelow reports whether every digit at a position strictly below pos
// is zero.
func (d *Decimal) allZeroBelow(pos int) bool {
	if pos <= 0 {
		return true
	}
	limbIdx := pos / limbDigits
	within := pos % limbDigits
	top := limbIdx
	if top > d.n {
		top = d.n
	}
	for i := 0; i < top && i < limbIdx; i++ {
		if d.limb[i] != 0 {
			return false
		}
	}
	if limbIdx < d.n && within > 0 {
		if d.limb[limbIdx]%pow10[within] != 0 {
			return false
		}
	}
	return true
}

// truncateBelow zeroes every digit strictly below pos, leaving digits at and
// above pos unchanged.
func (d *Decimal) truncateBelow(pos int) {
	limbIdx := pos / limbDigits
	within := pos % limbDigits
	for i := 0; i < limbIdx && i < d.n; i++ {
		d.limb[i] = 0
	}
	if limbIdx < d.n && within > 0 {
		d.limb[limbIdx] -= d.limb[limbIdx] % pow10[within]
	}
}

// addULP adds 10^pos to the value, propagating carry through as many limbs
// as needed (growing the limb count if the carry ripples past the
// previously most significant limb).
func (d *Decimal) addULP(pos int) {
	limbIdx := pos / limbDigits
	within := pos % limbDigits
	if limbIdx >= d.n {
		d.n = limbIdx + 1
	}
	d.limb[limbIdx] += pow10[within]
	for idx := limbIdx; d.limb[idx] >= limbBase; idx++ {
		d.limb[idx] -= limbBase
		if idx+1 >= maxLimbs {
			panic("bignum: Decimal overflowed its fixed capacity on carry")
		}
		if idx+1 >= d.n {
			d.n = idx + 2
		}
		d.limb[idx+1]++
	}
}

// RoundRule is a primitive rounding rule over an unsigned magnitude. The
// five caller-facing rounding modes of fpcodec normalize down to one of
// these three before calling RoundAt.
type RoundRule uint8

const (
	// RoundDown truncates: every digit below the round position is
	// discarded with no adjustment.
	RoundDown RoundRule = iota
	// RoundUp always rounds away from zero when any discarded digit is
	// non-zero.
	RoundUp
	// RoundNearestEven rounds to the nearest representable value at the
	// target position, breaking exact ties toward an even digit.
	RoundNearestEven
)

// RoundAt rounds the value to pos significant low-order digits removed,
// i.e. it keeps digits at position >= pos and rounds based on the digits
// below pos, per rule. pos must be >= 1.
//
// Callers that have already determined the position is at or below the
// trailing-zero count (the value is exact at that precision) should skip
// calling RoundAt entirely — it performs no such check itself.
func (d *Decimal) RoundAt(pos int, rule RoundRule) {
	roundUp := false
	switch rule {
	case RoundDown:
		roundUp = false
	case RoundUp:
		roundUp = !d.allZeroBelow(pos)
	case RoundNearestEven:
		tie := d.DigitAt(pos - 1)
		switch {
		case tie > 5:
			roundUp = true
		case tie < 5:
			roundUp = false
		default: // tie == 5
			if !d.allZeroBelow(pos - 1) {
				roundUp = true
			} else {
				roundUp = d.DigitAt(pos)%2 == 1
			}
		}
	}

	d.truncateBelow(pos)
	if roundUp {
		d.addULP(pos)
	}
}

// WriteDigitsUnsafe writes count ASCII decimal digits into dst (dst must be
// at least count bytes), most-significant first, covering decimal positions
// [pos, pos+count) of the represented value. Positions beyond the value's
// own digit length are written as '0'.
//
// This is the only place the bignum package materializes text; it assumes
// an adequately sized buffer exactly like the unsafe writers in intcodec
// and fpcodec.
func (d *Decimal) WriteDigitsUnsafe(dst []byte, pos, count int) {
	for i := 0; i < count; i++ {
		dst[count-1-i] = '0' + d.DigitAt(pos+i)
	}
}

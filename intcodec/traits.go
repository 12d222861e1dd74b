package intcodec

import "unsafe"

// Unsigned is the set of destination/source types for the unsigned decimal,
// hex, and binary codecs.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of destination/source types for the signed decimal
// codec.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// CharUnit is the set of character-unit widths a writer can fill or a
// parser can read, matching the three widths unicodec transcodes between
// (narrow, UTF-16/UCS-2, UTF-32/UCS-4) collapsed to their storage size.
type CharUnit interface {
	~uint8 | ~uint16 | ~uint32
}

// maxUnsigned returns the all-bits-set value of T, i.e. its maximum. This
// is the generic substitute for a per-width MAX constant table: it works
// identically for every instantiation because the all-ones bit pattern of
// an unsigned integer is always its maximum value.
func maxUnsigned[T Unsigned]() T {
	return ^T(0)
}

// bitSize returns the width of T in bits.
func bitSize[T Unsigned | Signed]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// minSigned returns the minimum (most negative) value of T, computed by
// setting exactly the sign bit. Shifting a typed signed value by a
// runtime-determined count follows two's-complement semantics, so this
// produces the correct minimum for every width without a lookup table.
func minSigned[T Signed]() T {
	return T(1) << uint(bitSize[T]()-1)
}

// maxSigned returns the maximum value of T. The bitwise complement of the
// minimum (1000...0) is 0111...1, the maximum, in two's complement.
func maxSigned[T Signed]() T {
	return ^minSigned[T]()
}

// magnitudeLimit returns, as a uint64, the largest magnitude a value of T
// may have: |minSigned[T]| when neg is true, maxSigned[T] otherwise. Both
// fit in a uint64 for every width this package supports (the widest case,
// int64, has a magnitude of at most 2^63).
func magnitudeLimit[T Signed](neg bool) uint64 {
	if neg {
		m := int64(minSigned[T]())
		return uint64(-(m + 1)) + 1
	}
	return uint64(maxSigned[T]())
}

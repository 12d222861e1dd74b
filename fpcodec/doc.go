// Package fpcodec converts between IEEE-754 binary32/binary64 values and
// decimal text.
//
// Three independent operations are provided:
//
//   - Shortest round-trip formatting (Classify + the Shortest* sizing and
//     writing functions): produces the fewest decimal digits that, parsed
//     back, reproduce the exact original bit pattern. This is Ryu (Adams,
//     "Ryu: Fast Float-to-String Conversion", PLDI 2018): find the
//     interval of decimal values that round back to the source float, and
//     emit the shortest decimal inside it, rounding to even at the
//     midpoint. Unlike the classic table-driven Ryu implementation, the
//     interval arithmetic here is done with exact arbitrary-precision
//     division (package math/big) rather than fixed-width multiply-shift
//     lookup tables — same algorithm, a different (and indisputably
//     correct) way of computing the one intermediate quantity the lookup
//     tables exist purely to speed up.
//   - Precision-bounded rounded formatting (RoundedSci/RoundedFixed):
//     materializes the exact decimal expansion of the binary value via
//     package bignum, then rounds it to a caller-chosen number of digits
//     under one of five rounding modes.
//   - Parsing (Parse): the reverse of both — decimal text to the nearest
//     representable binary value, breaking ties to even, again via exact
//     bignum-free big.Int arithmetic rather than an approximate fast path
//     with a bignum fallback.
//
// Every sizing/writing function follows the size-then-write discipline of
// the rest of this module.
package fpcodec

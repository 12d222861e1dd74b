// Package intcodec provides integer <-> text conversion for base 10
// (signed and unsigned), base 16, and base 2, over 8/16/32/64-bit integer
// widths and 8/16/32-bit character units.
//
// # Overview
//
// Every codec in this package follows a size-then-write discipline: call
// the size query for a value first, allocate (or reuse) a buffer of at
// least that many character units, then call the matching unsafe writer.
// The writer performs no bounds checking — it trusts the caller to have
// sized the buffer correctly, exactly like the floating-point writers in
// fpcodec.
//
//	n := intcodec.DecSize(v)
//	buf := make([]byte, n)
//	intcodec.WriteDecUnsafe(v, buf)
//
// Parsers are the reverse direction and return a (T, error) pair. Two
// error kinds can occur, both sentinels in package errs:
//   - errs.ErrInvalidArgument: empty input, a non-digit character, a
//     misplaced sign, or (hex/bin) an out-of-alphabet character.
//   - errs.ErrValueTooLarge: the accumulated magnitude would overflow the
//     destination type. Detected eagerly, digit by digit, via a running
//     compare against MAX/base and MAX%base — no intermediate overflow
//     ever occurs.
//
// # Character widths
//
// Every size query, writer, and parser is generic over the destination or
// source character unit (uint8, uint16, or uint32), matching the core's
// "three widths, no source-language char-type zoo" design note: a
// narrow/wide/ANSI/UTF-16/UTF-32 distinction is strictly the external
// boundary's concern, never the codec's.
package intcodec

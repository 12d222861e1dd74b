package unicodec

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u <= 0xDFFF }

// DecodeUTF16 decodes one codepoint from the start of src. It returns the
// codepoint, the number of uint16 units consumed, and whether the decode
// succeeded.
//
// A properly paired high/low surrogate consumes 2 units; any other unit
// consumes 1. In strict mode (replacement == nil) a lone surrogate (high
// with no following low, or a low appearing first) fails with ok ==
// false. In faulty mode it is replaced with *replacement, consuming only
// the offending unit, and decoding continues from the next one.
func DecodeUTF16(src []uint16, replacement *rune) (cp rune, consumed int, ok bool) {
	if len(src) == 0 {
		return 0, 0, false
	}
	u0 := src[0]
	switch {
	case isHighSurrogate(u0):
		if len(src) >= 2 && isLowSurrogate(src[1]) {
			v := (uint32(u0)-0xD800)<<10 + (uint32(src[1]) - 0xDC00) + 0x10000
			return rune(v), 2, true
		}
		return fail(replacement, 1)
	case isLowSurrogate(u0):
		return fail(replacement, 1)
	default:
		return rune(u0), 1, true
	}
}

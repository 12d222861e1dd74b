package unicodec

// DecodeUCS4 decodes one codepoint from the start of src. UCS-4 stores
// one scalar value per unit; a unit that is not a valid codepoint (a
// surrogate, or above U+10FFFF) fails (strict, replacement == nil) or
// reports *replacement (faulty).
func DecodeUCS4(src []uint32, replacement *rune) (cp rune, consumed int, ok bool) {
	if len(src) == 0 {
		return 0, 0, false
	}
	v := rune(src[0])
	if !IsValidCodepoint(v) {
		return fail(replacement, 1)
	}
	return v, 1, true
}

// EncodeUCS4 writes cp into dst[0]. Every codepoint is representable in
// UCS-4, so this never fails and replacement is unused.
func EncodeUCS4(cp rune, dst []uint32, replacement *rune) (n int, ok bool) {
	dst[0] = uint32(cp)
	return 1, true
}

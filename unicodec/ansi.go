package unicodec

// DecodeANSI decodes one codepoint from the start of src. The "ANSI"
// codepage here is ISO-8859-1/Latin-1: every byte value 0-255 maps
// directly to the identically numbered codepoint, so decoding never
// fails and replacement is unused.
func DecodeANSI(src []byte, replacement *rune) (cp rune, consumed int, ok bool) {
	if len(src) == 0 {
		return 0, 0, false
	}
	return rune(src[0]), 1, true
}

// EncodeANSI writes cp into dst[0] if it fits in a single Latin-1 byte
// (cp <= 0xFF). Above that range, strict mode (replacement == nil) fails;
// faulty mode narrows *replacement to its low byte instead, since the
// caller is expected to supply a replacement that already fits this
// codepage (U+FFFD itself does not).
func EncodeANSI(cp rune, dst []byte, replacement *rune) (n int, ok bool) {
	if cp > 0xFF {
		if replacement == nil {
			return 0, false
		}
		dst[0] = byte(*replacement)
		return 1, true
	}
	dst[0] = byte(cp)
	return 1, true
}

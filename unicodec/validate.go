package unicodec

// IsUTF8Compliant reports whether src is entirely well-formed UTF-8.
func IsUTF8Compliant(src []byte) bool {
	for len(src) > 0 {
		_, n, ok := DecodeUTF8(src, nil)
		if !ok {
			return false
		}
		src = src[n:]
	}
	return true
}

// IsUTF16Compliant reports whether src contains no lone surrogates.
func IsUTF16Compliant(src []uint16) bool {
	for len(src) > 0 {
		_, n, ok := DecodeUTF16(src, nil)
		if !ok {
			return false
		}
		src = src[n:]
	}
	return true
}

// IsUCS2Compliant reports whether src contains no surrogate-range units.
func IsUCS2Compliant(src []uint16) bool {
	for len(src) > 0 {
		_, n, ok := DecodeUCS2(src, nil)
		if !ok {
			return false
		}
		src = src[n:]
	}
	return true
}

// IsUCS4Compliant reports whether every unit in src is a valid codepoint.
func IsUCS4Compliant(src []uint32) bool {
	for len(src) > 0 {
		_, n, ok := DecodeUCS4(src, nil)
		if !ok {
			return false
		}
		src = src[n:]
	}
	return true
}

// IsANSICompliant always reports true: every byte value is a valid
// Latin-1 codepoint. It exists for symmetry with the other four
// encodings' validators.
func IsANSICompliant(src []byte) bool {
	return true
}

package unicodec

import (
	"fmt"

	"github.com/tmiguelf/charconv/errs"
)

// Unit is the storage width of one encoding's code unit.
type Unit interface {
	~byte | ~uint16 | ~uint32
}

// Encoding names one of the five encodings this package transcodes
// between.
type Encoding uint8

const (
	UTF8 Encoding = iota
	UTF16
	UCS2
	UCS4
	ANSI
)

// encodeUTF8Adapter and the other adapter/size functions below give every
// destination encoding the same (cp rune, dst, replacement *rune) (int,
// bool) shape transcodeCount/transcodeWrite need, folding each encoding's
// own notion of "not representable" into the replacement substitution
// shared by the whole faulty-transcode path.

func encodeUTF8Adapter(cp rune, dst []byte, replacement *rune) (int, bool) {
	n := EncodeUTF8Size(cp)
	if n == 0 {
		if replacement == nil {
			return 0, false
		}
		cp = *replacement
		n = EncodeUTF8Size(cp)
		if n == 0 {
			return 0, false
		}
	}
	EncodeUTF8Unsafe(cp, dst)
	return n, true
}

func encodeUTF16Adapter(cp rune, dst []uint16, replacement *rune) (int, bool) {
	n := EncodeUTF16Size(cp)
	if n == 0 {
		if replacement == nil {
			return 0, false
		}
		cp = *replacement
		n = EncodeUTF16Size(cp)
		if n == 0 {
			return 0, false
		}
	}
	EncodeUTF16Unsafe(cp, dst)
	return n, true
}

func sizeUTF8(cp rune, replacement *rune) (int, bool) {
	if n := EncodeUTF8Size(cp); n != 0 {
		return n, true
	}
	if replacement == nil {
		return 0, false
	}
	n := EncodeUTF8Size(*replacement)
	return n, n != 0
}

func sizeUTF16(cp rune, replacement *rune) (int, bool) {
	if n := EncodeUTF16Size(cp); n != 0 {
		return n, true
	}
	if replacement == nil {
		return 0, false
	}
	n := EncodeUTF16Size(*replacement)
	return n, n != 0
}

func sizeUCS2(cp rune, replacement *rune) (int, bool) {
	if cp > 0xFFFF && replacement == nil {
		return 0, false
	}
	return 1, true
}

func sizeUCS4(cp rune, replacement *rune) (int, bool) { return 1, true }

func sizeANSI(cp rune, replacement *rune) (int, bool) {
	if cp > 0xFF && replacement == nil {
		return 0, false
	}
	return 1, true
}

func transcodeCount[SE Unit](src []SE, decode func([]SE, *rune) (rune, int, bool), size func(rune, *rune) (int, bool), replacement *rune) (int, error) {
	units := 0
	for len(src) > 0 {
		cp, n, ok := decode(src, replacement)
		if !ok {
			return 0, fmt.Errorf("%w: malformed source sequence", errs.ErrInvalidArgument)
		}
		s, ok := size(cp, replacement)
		if !ok {
			return 0, fmt.Errorf("%w: codepoint not representable in destination encoding", errs.ErrInvalidArgument)
		}
		units += s
		src = src[n:]
	}
	return units, nil
}

func transcodeWrite[SE Unit, DE Unit](src []SE, dst []DE, decode func([]SE, *rune) (rune, int, bool), encode func(rune, []DE, *rune) (int, bool), replacement *rune) (consumed, written int, err error) {
	for len(src) > 0 {
		cp, n, ok := decode(src, replacement)
		if !ok {
			return consumed, written, fmt.Errorf("%w: malformed source sequence", errs.ErrInvalidArgument)
		}
		w, ok := encode(cp, dst, replacement)
		if !ok {
			return consumed, written, fmt.Errorf("%w: codepoint not representable in destination encoding", errs.ErrInvalidArgument)
		}
		dst = dst[w:]
		src = src[n:]
		consumed += n
		written += w
	}
	return consumed, written, nil
}

// TranscodeSize reports how many destination units Transcode would write
// for src, without writing anything.
//
// replacement selects strict or faulty mode. In strict mode
// (replacement == nil) TranscodeSize fails the same way Transcode would:
// on a malformed source sequence or a source codepoint the destination
// encoding cannot represent. In faulty mode, *replacement stands in for
// either failure and is itself re-encoded through the destination
// encoding: narrowing to ANSI, a single octet; widening, a single
// codepoint.
func TranscodeSize(from Encoding, src any, to Encoding, replacement *rune) (int, error) {
	var size func(rune, *rune) (int, bool)
	switch to {
	case UTF8:
		size = sizeUTF8
	case UTF16:
		size = sizeUTF16
	case UCS2:
		size = sizeUCS2
	case UCS4:
		size = sizeUCS4
	case ANSI:
		size = sizeANSI
	default:
		return 0, fmt.Errorf("%w: unknown destination encoding", errs.ErrInvalidArgument)
	}

	switch from {
	case UTF8:
		return transcodeCount(src.([]byte), DecodeUTF8, size, replacement)
	case UTF16:
		return transcodeCount(src.([]uint16), DecodeUTF16, size, replacement)
	case UCS2:
		return transcodeCount(src.([]uint16), DecodeUCS2, size, replacement)
	case UCS4:
		return transcodeCount(src.([]uint32), DecodeUCS4, size, replacement)
	case ANSI:
		return transcodeCount(src.([]byte), DecodeANSI, size, replacement)
	default:
		return 0, fmt.Errorf("%w: unknown source encoding", errs.ErrInvalidArgument)
	}
}

// Transcode converts src (in the from encoding) into dst (in the to
// encoding). dst must already be sized to at least TranscodeSize(from,
// src, to, replacement) units; Transcode performs no bounds checking of
// its own, per this module's unsafe-write convention. It returns the
// number of source units consumed and destination units written.
//
// replacement carries the same strict/faulty meaning as in TranscodeSize.
func Transcode(from Encoding, src any, to Encoding, dst any, replacement *rune) (consumed, written int, err error) {
	switch from {
	case UTF8:
		return transcodeTo(src.([]byte), DecodeUTF8, to, dst, replacement)
	case UTF16:
		return transcodeTo(src.([]uint16), DecodeUTF16, to, dst, replacement)
	case UCS2:
		return transcodeTo(src.([]uint16), DecodeUCS2, to, dst, replacement)
	case UCS4:
		return transcodeTo(src.([]uint32), DecodeUCS4, to, dst, replacement)
	case ANSI:
		return transcodeTo(src.([]byte), DecodeANSI, to, dst, replacement)
	default:
		return 0, 0, fmt.Errorf("%w: unknown source encoding", errs.ErrInvalidArgument)
	}
}

func transcodeTo[SE Unit](src []SE, decode func([]SE, *rune) (rune, int, bool), to Encoding, dst any, replacement *rune) (consumed, written int, err error) {
	switch to {
	case UTF8:
		return transcodeWrite(src, dst.([]byte), decode, encodeUTF8Adapter, replacement)
	case UTF16:
		return transcodeWrite(src, dst.([]uint16), decode, encodeUTF16Adapter, replacement)
	case UCS2:
		return transcodeWrite(src, dst.([]uint16), decode, EncodeUCS2, replacement)
	case UCS4:
		return transcodeWrite(src, dst.([]uint32), decode, EncodeUCS4, replacement)
	case ANSI:
		return transcodeWrite(src, dst.([]byte), decode, EncodeANSI, replacement)
	default:
		return 0, 0, fmt.Errorf("%w: unknown destination encoding", errs.ErrInvalidArgument)
	}
}

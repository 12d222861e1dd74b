// Package unicodec transcodes text between the five encodings a legacy
// text core typically has to bridge: UTF-8, UTF-16, UCS-2, UCS-4, and a
// single-byte "ANSI" (Latin-1/ISO-8859-1) codepage.
//
// # Strict vs faulty
//
// Every decode and encode operation takes a replacement *rune. In strict
// mode (replacement == nil), a malformed unit sequence (an overlong UTF-8
// sequence, a lone UTF-16 surrogate, a UCS-2 unit in the surrogate range,
// a codepoint ANSI cannot represent) is reported as a decode/encode
// failure and the caller is expected to stop. In faulty mode
// (replacement non-nil) the same condition substitutes *replacement in
// its place — re-encoded through the destination encoding, narrowing to
// a single octet or widening to a single codepoint as that encoding
// requires — consumes the offending unit(s), and continues. This is the
// same recovery strategy the Web Hypertext Application Technology Working
// Group's encoding standard uses, and the one most legacy codebases
// converged on independently; ReplacementChar (U+FFFD) is the
// conventional choice of replacement but callers may supply any rune.
//
// # Matrix
//
// Any of the five encodings can be transcoded to any other via Transcode
// and its paired sizing query TranscodeSize, which follow the size-then-
// write discipline used throughout this module: call TranscodeSize to
// learn how many destination units are needed, size the destination
// buffer, then call Transcode to fill it.
package unicodec

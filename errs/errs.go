// Package errs defines the sentinel errors returned by the core codecs.
//
// The core never panics on malformed input and never allocates a
// bespoke error type per call site; every fallible entry point wraps one
// of these sentinels with fmt.Errorf("%w: ...", ...) so callers can use
// errors.Is for classification without string matching.
package errs

import "errors"

var (
	// ErrInvalidArgument is returned when an integer or floating-point
	// parser is given input that is empty, contains a character outside
	// the expected alphabet, or is missing a required component (e.g. an
	// exponent marker with no digits after it).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValueTooLarge is returned by the integer parsers when the
	// accumulated magnitude would overflow the destination type.
	ErrValueTooLarge = errors.New("value too large")
)

package harehttp

import "errors"

// Parse errors returned by the header, start-line and message readers.
//
// Errors carrying additional context wrap one of these sentinels, so
// callers inspect them with errors.Is.
var (
	// ErrMalformedStartLine indicates a request or status line missing a
	// required token, an unrecognized method, or a non-numeric or
	// out-of-range status code.
	ErrMalformedStartLine = errors.New("harehttp: malformed start line")

	// ErrMalformedHeader indicates a header line without a ':' separator.
	ErrMalformedHeader = errors.New("harehttp: malformed header line")

	// ErrInvalidEncoding indicates a byte sequence expected to be text
	// that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("harehttp: invalid utf-8 encoding")
)

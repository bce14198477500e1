package harehttp

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Method is an HTTP request method.
//
// The set of methods is closed. Parsing an unknown token fails instead
// of producing a new variant.
type Method int

const (
	MethodGet Method = iota
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodConnect
	MethodOptions
	MethodTrace
	MethodPatch
)

var methodStrings = [...]string{
	MethodGet:     "GET",
	MethodHead:    "HEAD",
	MethodPost:    "POST",
	MethodPut:     "PUT",
	MethodDelete:  "DELETE",
	MethodConnect: "CONNECT",
	MethodOptions: "OPTIONS",
	MethodTrace:   "TRACE",
	MethodPatch:   "PATCH",
}

// String returns the canonical uppercase token for m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodStrings) {
		return ""
	}
	return methodStrings[m]
}

// ParseMethod converts an uppercase method token to a Method.
//
// The match is exact and case-sensitive. Unknown tokens fail with
// ErrMalformedStartLine.
func ParseMethod(s string) (Method, error) {
	for m, ms := range methodStrings {
		if s == ms {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrMalformedStartLine, s)
}

// parseRequestLine tokenizes a request line on single spaces.
//
// The first token is the method, the second the request URI. The third
// token carries the HTTP version and is ignored.
func parseRequestLine(line []byte) (Method, string, error) {
	n := bytes.IndexByte(line, ' ')
	if n < 0 {
		return 0, "", fmt.Errorf("%w: cannot find whitespace in %q", ErrMalformedStartLine, line)
	}
	m, err := ParseMethod(b2s(line[:n]))
	if err != nil {
		return 0, "", err
	}

	uri := line[n+1:]
	if k := bytes.IndexByte(uri, ' '); k >= 0 {
		uri = uri[:k]
	}
	if len(uri) == 0 {
		return 0, "", fmt.Errorf("%w: empty request uri in %q", ErrMalformedStartLine, line)
	}
	if !utf8.Valid(uri) {
		return 0, "", fmt.Errorf("%w: request uri in %q", ErrInvalidEncoding, line)
	}
	return m, string(uri), nil
}

// appendRequestLine appends "{METHOD} {URI} HTTP/1.1\r\n" to dst and
// returns the extended dst.
func appendRequestLine(dst []byte, m Method, requestURI string) []byte {
	dst = append(dst, m.String()...)
	dst = append(dst, ' ')
	dst = append(dst, requestURI...)
	dst = append(dst, ' ')
	dst = append(dst, strHTTP11...)
	return append(dst, strCRLF...)
}

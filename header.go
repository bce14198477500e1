package harehttp

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Header is a single header line of an HTTP message.
//
// The semicolon-joined raw value is the single source of truth. Every
// string returned by Value or Values is an allocation-free view into
// the raw buffer, so the views become invalid once the owning message
// is reset or released. Make copies instead of storing them.
type Header struct {
	key string

	// raw owns the bytes of the value region. values aliases it.
	raw    []byte
	values []string
}

// NewHeader builds a header with zero, one or many values.
//
// With many values the raw value is the values joined with ';' and each
// element of Values is a trimmed slice of it, in input order.
func NewHeader(key string, values ...string) Header {
	h := Header{key: key}
	switch len(values) {
	case 0:
	case 1:
		h.raw = append(h.raw, values[0]...)
		h.values = []string{b2s(h.raw)}
	default:
		for i, v := range values {
			if i > 0 {
				h.raw = append(h.raw, ';')
			}
			h.raw = append(h.raw, v...)
		}
		h.values = splitRawValue(h.raw)
	}
	return h
}

// ParseHeader decodes a single header line.
//
// A line without a ':' separator fails with ErrMalformedHeader. The key
// is the text before the first ':', trimmed of surrounding spaces; the
// remainder, trimmed likewise, becomes the raw value. A raw value
// containing ';' is tokenized into a multi-value header. Non-UTF-8 text
// fails with ErrInvalidEncoding and nothing of the failed parse is
// retained.
func ParseHeader(line []byte) (Header, error) {
	i := bytes.IndexByte(line, ':')
	if i < 0 {
		return Header{}, fmt.Errorf("%w: missing colon in %q", ErrMalformedHeader, line)
	}
	k := trim(line[:i])
	v := trim(line[i+1:])
	if !utf8.Valid(k) {
		return Header{}, fmt.Errorf("%w: header key in %q", ErrInvalidEncoding, line)
	}
	if !utf8.Valid(v) {
		return Header{}, fmt.Errorf("%w: header value in %q", ErrInvalidEncoding, line)
	}

	h := Header{key: string(k)}
	if len(v) == 0 {
		return h, nil
	}
	h.raw = append(h.raw, v...)
	if bytes.IndexByte(h.raw, ';') < 0 {
		h.values = []string{b2s(h.raw)}
	} else {
		h.values = splitRawValue(h.raw)
	}
	return h, nil
}

// splitRawValue tokenizes raw on ';' and returns trimmed views of each
// token, in order.
func splitRawValue(raw []byte) []string {
	vv := make([]string, 0, bytes.Count(raw, strSemicolon)+1)
	for {
		i := bytes.IndexByte(raw, ';')
		if i < 0 {
			vv = append(vv, b2s(trim(raw)))
			return vv
		}
		vv = append(vv, b2s(trim(raw[:i])))
		raw = raw[i+1:]
	}
}

// Key returns the header key. Case is preserved as constructed.
func (h *Header) Key() string {
	return h.key
}

// RawValue returns the owned bytes of the value region.
//
// The returned slice is valid until the owning message is released.
func (h *Header) RawValue() []byte {
	return h.raw
}

// Value returns the whole raw value as a string view, or "" for a
// header without a value.
func (h *Header) Value() string {
	return b2s(h.raw)
}

// Values returns views of the individual values, in order.
// nil is returned for a header without a value.
func (h *Header) Values() []string {
	return h.values
}

func (h *Header) reset() {
	h.key = ""
	h.raw = h.raw[:0]
	h.values = nil
}

// appendHeaderLine appends the wire form of h to dst and returns the
// extended dst.
//
// Multi-value headers render every value followed by ';', including the
// last. The trailing ';' is part of the wire contract.
func appendHeaderLine(dst []byte, h *Header) []byte {
	dst = append(dst, h.key...)
	if len(h.values) == 0 {
		dst = append(dst, ':')
		return append(dst, strCRLF...)
	}
	dst = append(dst, strColonSpace...)
	if len(h.values) == 1 {
		dst = append(dst, h.raw...)
	} else {
		for i, v := range h.values {
			if i > 0 {
				dst = append(dst, ' ')
			}
			dst = append(dst, v...)
			dst = append(dst, ';')
		}
	}
	return append(dst, strCRLF...)
}

// trim returns b with leading and trailing spaces and tabs removed.
// It does not assume Unicode or UTF-8.
func trim(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	n := len(b)
	for n > i && (b[n-1] == ' ' || b[n-1] == '\t') {
		n--
	}
	return b[i:n]
}

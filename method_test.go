package harehttp

import (
	"errors"
	"testing"
)

func TestMethodRoundTrip(t *testing.T) {
	t.Parallel()

	methods := []Method{
		MethodGet, MethodHead, MethodPost, MethodPut, MethodDelete,
		MethodConnect, MethodOptions, MethodTrace, MethodPatch,
	}
	for _, m := range methods {
		s := m.String()
		if len(s) == 0 {
			t.Fatalf("empty token for method %d", m)
		}
		parsed, err := ParseMethod(s)
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %v", s, err)
		}
		if parsed != m {
			t.Fatalf("round trip mismatch for %q: got %d, want %d", s, parsed, m)
		}
	}
}

func TestParseMethodUnknown(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "get", "Get", "FOO", "GETT", "POST "} {
		if _, err := ParseMethod(s); !errors.Is(err, ErrMalformedStartLine) {
			t.Fatalf("expected ErrMalformedStartLine for %q, got %v", s, err)
		}
	}
}

func TestParseRequestLine(t *testing.T) {
	t.Parallel()

	m, uri, err := parseRequestLine([]byte("GET / HTTP/1.1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != MethodGet {
		t.Fatalf("unexpected method %q", m)
	}
	if uri != "/" {
		t.Fatalf("unexpected uri %q", uri)
	}

	// The version token is positional and ignored.
	m, uri, err = parseRequestLine([]byte("POST /thing FOO/9.9"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != MethodPost || uri != "/thing" {
		t.Fatalf("unexpected result %q %q", m, uri)
	}

	// A missing version token is fine as well.
	if _, uri, err = parseRequestLine([]byte("DELETE /x")); err != nil || uri != "/x" {
		t.Fatalf("unexpected result %q, %v", uri, err)
	}
}

func TestParseRequestLineMalformed(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "GET", "GET ", "FOO / HTTP/1.1", "get / HTTP/1.1"} {
		if _, _, err := parseRequestLine([]byte(s)); !errors.Is(err, ErrMalformedStartLine) {
			t.Fatalf("expected ErrMalformedStartLine for %q, got %v", s, err)
		}
	}
}

func TestParseRequestLineInvalidEncoding(t *testing.T) {
	t.Parallel()

	line := []byte("GET /\xff\xfe HTTP/1.1")
	if _, _, err := parseRequestLine(line); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestAppendRequestLine(t *testing.T) {
	t.Parallel()

	got := string(appendRequestLine(nil, MethodGet, "/"))
	expected := "GET / HTTP/1.1\r\n"
	if got != expected {
		t.Fatalf("got %q expected %q", got, expected)
	}
}

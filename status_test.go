package harehttp

import (
	"errors"
	"testing"
)

func TestStatusMessage(t *testing.T) {
	t.Parallel()

	if s := StatusMessage(StatusOK); s != "OK" {
		t.Fatalf("unexpected status message %q", s)
	}
	if s := StatusMessage(StatusNotFound); s != "Not Found" {
		t.Fatalf("unexpected status message %q", s)
	}
	if s := StatusMessage(599); s != "Unknown" {
		t.Fatalf("unexpected status message %q for unknown code", s)
	}
}

func TestParseStatusLine(t *testing.T) {
	t.Parallel()

	code, err := parseStatusLine([]byte("HTTP/1.1 200 OK"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != StatusOK {
		t.Fatalf("unexpected code %d", code)
	}

	// The version token must be present but is not validated.
	if code, err = parseStatusLine([]byte("FOO 404 Not Found")); err != nil || code != StatusNotFound {
		t.Fatalf("unexpected result %d, %v", code, err)
	}

	// A missing reason phrase is fine.
	if code, err = parseStatusLine([]byte("HTTP/1.1 204")); err != nil || code != StatusNoContent {
		t.Fatalf("unexpected result %d, %v", code, err)
	}
}

func TestParseStatusLineMalformed(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"",
		"HTTP/1.1",
		"HTTP/1.1 ",
		"HTTP/1.1 abc OK",
		"HTTP/1.1 -1 Bad",
		"HTTP/1.1 20x OK",
		"HTTP/1.1 123456 Too Big",
	} {
		if _, err := parseStatusLine([]byte(s)); !errors.Is(err, ErrMalformedStartLine) {
			t.Fatalf("expected ErrMalformedStartLine for %q, got %v", s, err)
		}
	}
}

func TestAppendStatusLine(t *testing.T) {
	t.Parallel()

	got := string(appendStatusLine(nil, StatusOK))
	expected := "HTTP/1.1 200 OK\r\n"
	if got != expected {
		t.Fatalf("got %q expected %q", got, expected)
	}

	got = string(appendStatusLine(nil, 599))
	expected = "HTTP/1.1 599 Unknown\r\n"
	if got != expected {
		t.Fatalf("got %q expected %q", got, expected)
	}
}

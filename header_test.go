package harehttp

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewHeaderSingleValue(t *testing.T) {
	t.Parallel()

	h := NewHeader("Authorization", "Bearer token")
	if h.Key() != "Authorization" {
		t.Fatalf("unexpected key %q", h.Key())
	}
	if string(h.RawValue()) != "Bearer token" {
		t.Fatalf("unexpected raw value %q", h.RawValue())
	}
	if vv := h.Values(); len(vv) != 1 || vv[0] != "Bearer token" {
		t.Fatalf("unexpected values %q", vv)
	}
}

func TestNewHeaderMultiValue(t *testing.T) {
	t.Parallel()

	h := NewHeader("Multi-Field-Header", "first field", "second field")
	if string(h.RawValue()) != "first field;second field" {
		t.Fatalf("unexpected raw value %q", h.RawValue())
	}
	expected := []string{"first field", "second field"}
	if !reflect.DeepEqual(h.Values(), expected) {
		t.Fatalf("unexpected values %q, expected %q", h.Values(), expected)
	}
}

func TestNewHeaderNoValue(t *testing.T) {
	t.Parallel()

	h := NewHeader("X-Empty")
	if len(h.RawValue()) != 0 {
		t.Fatalf("unexpected raw value %q", h.RawValue())
	}
	if h.Values() != nil {
		t.Fatalf("unexpected values %q", h.Values())
	}
}

func TestParseHeaderSingleValue(t *testing.T) {
	t.Parallel()

	h, err := ParseHeader([]byte("Authorization: Bearer token"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Key() != "Authorization" {
		t.Fatalf("unexpected key %q", h.Key())
	}
	if vv := h.Values(); len(vv) != 1 || vv[0] != "Bearer token" {
		t.Fatalf("unexpected values %q", vv)
	}
}

func TestParseHeaderMultiValue(t *testing.T) {
	t.Parallel()

	h, err := ParseHeader([]byte("Accept: text/html ; application/json;  text/plain"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"text/html", "application/json", "text/plain"}
	if !reflect.DeepEqual(h.Values(), expected) {
		t.Fatalf("unexpected values %q, expected %q", h.Values(), expected)
	}
}

func TestParseHeaderNoValue(t *testing.T) {
	t.Parallel()

	h, err := ParseHeader([]byte("X-Empty:"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Key() != "X-Empty" {
		t.Fatalf("unexpected key %q", h.Key())
	}
	if h.Values() != nil {
		t.Fatalf("unexpected values %q", h.Values())
	}
}

func TestParseHeaderTrimsKeyAndValue(t *testing.T) {
	t.Parallel()

	h, err := ParseHeader([]byte("  Host :   example.com  "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Key() != "Host" {
		t.Fatalf("unexpected key %q", h.Key())
	}
	if v := h.Value(); v != "example.com" {
		t.Fatalf("unexpected value %q", v)
	}
}

func TestParseHeaderMalformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseHeader([]byte("garbage")); !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestParseHeaderInvalidEncoding(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"X-Bin: \xff\xfe",
		"X-\xff\xfe: ok",
		"X-Multi: good; \xc3\x28; fine",
	} {
		if _, err := ParseHeader([]byte(line)); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("expected ErrInvalidEncoding for %q, got %v", line, err)
		}
	}
}

func TestAppendHeaderLine(t *testing.T) {
	t.Parallel()

	testAppendHeaderLine(t, NewHeader("Host", "example.com"), "Host: example.com\r\n")
	// Every value of a multi-value header is followed by ';',
	// including the last.
	testAppendHeaderLine(t, NewHeader("Multi", "a", "b", "c"), "Multi: a; b; c;\r\n")
	testAppendHeaderLine(t, NewHeader("X-Empty"), "X-Empty:\r\n")
}

func testAppendHeaderLine(t *testing.T, h Header, expected string) {
	t.Helper()

	got := string(appendHeaderLine(nil, &h))
	if got != expected {
		t.Fatalf("got %q expected %q", got, expected)
	}
}

func TestHeaderParseSerializeConsistency(t *testing.T) {
	t.Parallel()

	// The multi-value view is a reparse of the raw value, so parsing a
	// serialized multi-value line yields the same values back (modulo
	// the trailing empty token produced by the trailing ';').
	h := NewHeader("Multi", "first field", "second field")
	line := appendHeaderLine(nil, &h)
	parsed, err := ParseHeader(line[:len(line)-2])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vv := parsed.Values()
	if len(vv) != 3 || vv[0] != "first field" || vv[1] != "second field" || vv[2] != "" {
		t.Fatalf("unexpected values %q", vv)
	}
}

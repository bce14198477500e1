package harehttp

import (
	"testing"
)

func TestAppendUint(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 9, 10, 123, 65535, 123456} {
		got := string(AppendUint(nil, n))
		expected := string(AppendUint([]byte{}, n))
		if got != expected {
			t.Fatalf("mismatch for %d: %q vs %q", n, got, expected)
		}
		var m int
		for _, c := range got {
			m = m*10 + int(c-'0')
		}
		if m != n {
			t.Fatalf("unexpected serialization %q for %d", got, n)
		}
	}
}

func TestParseUint16(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		s string
		v uint16
	}{
		{"0", 0},
		{"200", 200},
		{"404", 404},
		{"65535", 65535},
	} {
		v, err := parseUint16([]byte(tc.s))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.s, err)
		}
		if v != tc.v {
			t.Fatalf("unexpected value %d for %q, expected %d", v, tc.s, tc.v)
		}
	}

	for _, s := range []string{"", "abc", "12a", "-1", "65536", "999999"} {
		if _, err := parseUint16([]byte(s)); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

package harehttp

import (
	"fmt"
	"unsafe"
)

// AppendUint appends n to dst and returns dst (which may be newly allocated).
func AppendUint(dst []byte, n int) []byte {
	if n < 0 {
		panic("BUG: int must be positive")
	}

	var b [20]byte
	buf := b[:]
	i := len(buf)
	var q int
	for n >= 10 {
		i--
		q = n / 10
		buf[i] = '0' + byte(n-q*10)
		n = q
	}
	i--
	buf[i] = '0' + byte(n)

	dst = append(dst, buf[i:]...)
	return dst
}

// parseUint16 parses b as a base-10 unsigned 16-bit integer.
// The whole of b must be digits.
func parseUint16(b []byte) (uint16, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("empty integer")
	}
	var v uint32
	for _, c := range b {
		k := c - '0'
		if k > 9 {
			return 0, fmt.Errorf("unexpected char %c. Expected 0-9", c)
		}
		v = 10*v + uint32(k)
		if v > 0xffff {
			return 0, fmt.Errorf("too large uint16 %q", b)
		}
	}
	return uint16(v), nil
}

// b2s converts byte slice to a string without memory allocation.
// See https://groups.google.com/forum/#!msg/Golang-Nuts/ENgbUzYvCuU/90yGx7GUAgAJ .
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b))
}

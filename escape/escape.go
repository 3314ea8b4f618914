// Package escape implements the JSON string-literal escape codec.
package escape

import (
	"fmt"
	"strconv"
)

// shortCodes maps the bytes that have a two-byte JSON escape (the quote,
// the backslash, and five control bytes) to their shortcode.
var shortCodes = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// longCodes is shortCodes inverted, for decoding.
var longCodes = func() map[byte]byte {
	m := make(map[byte]byte, len(shortCodes))
	for k, v := range shortCodes {
		m[v] = k
	}
	return m
}()

// IsControlCode returns true if the given byte is a control code.
func IsControlCode(c byte) bool {
	return c <= 0x1f
}

// Append appends the escaped form of s to dst and returns the extended
// buffer. Bytes with a dedicated shortcode become their two-byte form,
// any other control code becomes \u00xx with lowercase hex, and every
// other byte passes through unchanged.
func Append(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if sc, ok := shortCodes[c]; ok {
			dst = append(dst, '\\', sc)
		} else if IsControlCode(c) {
			dst = append(dst, fmt.Sprintf("\\u%04x", c)...)
		} else {
			dst = append(dst, c)
		}
	}
	return dst
}

// Encode returns the escaped form of s.
func Encode(s string) string {
	return string(Append(nil, s))
}

// Decode reverses Encode: two-byte escapes are replaced by the byte
// they encode, and \uXXXX escapes decode to the single byte equal to
// the low byte of the hex value. Unrecognized escapes and trailing
// backslashes pass through unchanged.
func Decode(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			out = append(out, s[i])
			continue
		}
		if lc, ok := longCodes[s[i+1]]; ok {
			out = append(out, lc)
			i++
			continue
		}
		if s[i+1] == 'u' && i+5 < len(s) {
			if x, err := strconv.ParseUint(s[i+2:i+6], 16, 32); err == nil {
				out = append(out, byte(x))
				i += 5
				continue
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}

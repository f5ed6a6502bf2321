// Package textenc decodes uploaded file content into UTF-8 strings.
// Input defaults to UTF-8; content that is not valid UTF-8 is decoded as
// Windows-1252, the common legacy single-byte encoding for English text.
// Decoding is best-effort and never fails: undecodable bytes are dropped.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw document bytes to a UTF-8 string. It returns the
// decoded text and whether the legacy fallback decoder was used.
func Decode(content []byte) (string, bool) {
	if utf8.Valid(content) {
		return string(content), false
	}
	return decodeFallback(content), true
}

// decodeFallback decodes Windows-1252 content byte by byte, dropping the
// few code points the charmap leaves undefined.
func decodeFallback(content []byte) string {
	decoded := make([]rune, 0, len(content))
	for _, b := range content {
		r := charmap.Windows1252.DecodeByte(b)
		if r == utf8.RuneError {
			continue // Undefined in Windows-1252: drop rather than fail
		}
		decoded = append(decoded, r)
	}
	return string(decoded)
}

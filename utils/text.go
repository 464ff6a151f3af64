package utils

import (
	"strings"
	"unicode/utf8"
)

// CleanText strips control characters that PDF extraction tends to leave
// behind and collapses runs of spaces.
func CleanText(text string) string {
	replacements := map[string]string{
		"\x00":   "",   // Null character
		"\uFFFD": "",   // Unicode replacement character
		"\x1b":   "",   // Escape character
		"\r":     "",   // Carriage return
		"\f":     "\n", // Form feed to newline
	}
	cleaned := text
	for old, new := range replacements {
		cleaned = strings.ReplaceAll(cleaned, old, new)
	}
	for strings.Contains(cleaned, "  ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}
	return strings.TrimSpace(cleaned)
}

// DecodeText interprets content as UTF-8, falling back to Latin-1 when the
// bytes are not valid UTF-8. Latin-1 decoding cannot fail: every byte maps to
// the code point of the same value.
func DecodeText(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}
	runes := make([]rune, len(content))
	for i, b := range content {
		runes[i] = rune(b)
	}
	return string(runes)
}

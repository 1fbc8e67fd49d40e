// Package strings provides small string helpers shared by the adapters
package strings

import (
	std "strings"
	"unicode/utf8"
)

// NullIfBlank returns nil if s is blank/whitespace, else the original string.
// Useful for JSON and query values where null is desired for blanks
func NullIfBlank(s string) any {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// OneLine folds all whitespace runs, newlines included, into single spaces
func OneLine(s string) string {
	return std.Join(std.Fields(s), " ")
}

// Clip bounds s to max runes, ending with an ellipsis when cut
func Clip(s string, max int) string {
	if max <= 3 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}

// TruncateUTF8 returns a string made from b, truncated to at most max bytes,
// backing up to a UTF-8 boundary if needed, and appending an ellipsis if truncated
func TruncateUTF8(b []byte, max int) string {
	if max <= 0 || len(b) <= max {
		return string(b)
	}
	i := max
	// back up to the start of a rune (0b10xxxxxx indicates continuation byte)
	for i > 0 && (b[i]&0xC0) == 0x80 {
		i--
	}
	if i <= 0 {
		i = max
	}
	return string(b[:i]) + "..."
}

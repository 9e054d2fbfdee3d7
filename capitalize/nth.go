// Package capitalize rewrites the case of a string so that only every
// Nth alphanumeric character is upper case.
package capitalize

import (
	"strings"
	"unicode"
)

// IsAlphanumeric reports whether r is one of [A-Za-z0-9].
func IsAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Count returns the number of alphanumeric characters in s.
func Count(s string) int {
	n := 0
	for _, r := range s {
		if IsAlphanumeric(r) {
			n++
		}
	}
	return n
}

// Nth lowercases s and upper cases every nth alphanumeric character of it.
// Other characters are lowercased and do not advance the count.
// For n <= 0 nothing is upper cased.
func Nth(s string, n int) string {
	var b strings.Builder
	b.Grow(len(s))

	seen := 0
	for _, r := range s {
		if !IsAlphanumeric(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}

		seen++
		if n > 0 && seen%n == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

package internal

import (
	"fmt"
	"strings"
)

// DefaultLexiconName returns the output file name used when none is given.
// Format: <src>2<trg>.txt
func DefaultLexiconName(srcISO, trgISO string) string {
	return fmt.Sprintf("%s2%s.txt", SanitizeFilename(srcISO), SanitizeFilename(trgISO))
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// isAlphaNumeric checks if a rune is an ASCII letter or digit
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

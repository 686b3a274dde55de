package reader

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC normalization and collapses runs of whitespace
// into single spaces. NFKC folds fullwidth forms, ligatures, and other
// compatibility characters that PDF fonts are fond of, so downstream
// pattern matching sees canonical text ("１.２" becomes "1.2").
func Normalize(s string) string {
	s = norm.NFKC.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if !unicode.IsGraphic(r) {
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make builds a slug from a title: lower-case, diacritics stripped via NFD
// decomposition, đ mapped to d, everything outside [a-z0-9 ] dropped and
// whitespace runs collapsed to single hyphens. Uniqueness is not checked.
func Make(title string) string {
	s := strings.ToLower(title)
	s = strings.Map(func(r rune) rune {
		if r == 'đ' {
			return 'd'
		}
		return r
	}, s)

	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining mark
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || r == '-' {
			b.WriteRune(r)
		}
	}

	fields := strings.FieldsFunc(b.String(), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return strings.Join(fields, "-")
}

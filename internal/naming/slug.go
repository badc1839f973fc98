// Package naming derives URL slugs from display names.
package naming

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify converts a display name into a lowercase ASCII slug.
// Accents are stripped, runs of spaces, dashes and underscores collapse into one dash,
// and any other punctuation is dropped. "Ruleta Año Nuevo!" becomes "ruleta-ano-nuevo".
func Slugify(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = cases.Lower(language.Und).String(folded)

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingSep && b.Len() > 0 {
				b.WriteString(SlugSeparator)
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		}
	}

	slug := b.String()
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], SlugSeparator)
	}
	return slug
}

// WithSuffix appends a numeric suffix used to disambiguate a taken slug
func WithSuffix(slug string, n int) string {
	suffix := SlugSeparator + strconv.Itoa(n)
	if len(slug)+len(suffix) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength-len(suffix)], SlugSeparator)
	}
	return slug + suffix
}

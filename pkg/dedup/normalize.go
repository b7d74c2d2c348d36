package dedup

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName trims, collapses inner whitespace and lowercases a person name.
func NormalizeName(s string) string {
	s = norm.NFC.String(s)
	s = strings.Join(strings.Fields(s), " ")
	return lowerRU(s)
}

// NormalizePhone reduces a phone number to its digits. Russian numbers written
// with a leading 8 or without the country code are rewritten to start with 7.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case len(digits) == 11 && digits[0] == '8':
		return "7" + digits[1:]
	case len(digits) == 10:
		return "7" + digits
	}
	return digits
}

var handlePrefixes = []string{
	"www.",
	"t.me/",
	"telegram.me/",
	"telegram.dog/",
	"instagram.com/",
	"instagr.am/",
}

// NormalizeHandle reduces a Telegram or Instagram handle or profile link to
// the bare lowercase username.
func NormalizeHandle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	for _, p := range handlePrefixes {
		s = strings.TrimPrefix(s, p)
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	s = strings.TrimLeft(s, "@")
	return strings.TrimFunc(s, unicode.IsSpace)
}

func normalizeLabel(s string) string {
	return lowerRU(strings.TrimSpace(s))
}

// lowerRU builds a Caser per call since a Caser must not be shared between
// goroutines.
func lowerRU(s string) string {
	return cases.Lower(language.Russian).String(s)
}

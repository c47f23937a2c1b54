package domain

import (
	"strings"
	"unicode"
)

// NormalizePersonnelID prepares a personnel identifier for lookup:
//   - trims leading/trailing whitespace
//   - removes inner whitespace, so "19800101 200501 1 001" and
//     "198001012005011001" match
//
// Letters and punctuation are preserved as issued.
func NormalizePersonnelID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

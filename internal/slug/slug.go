// Package slug converts arbitrary text to URL-safe anchor identifiers.
package slug

import "strings"

// Slugify converts text to a lowercase ASCII slug with hyphens.
// Runs of non-alphanumeric characters collapse to a single hyphen,
// and leading/trailing hyphens are trimmed. An empty or fully
// non-alphanumeric input yields an empty slug.
//
// Slugify is pure and deterministic: the same input always produces
// the same slug.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	prevHyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

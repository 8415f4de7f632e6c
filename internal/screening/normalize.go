package screening

import "strings"

// Normalize lowercases text, replaces every character outside [a-z0-9]
// with a space, and splits the result into non-empty tokens. It never
// fails; empty input yields an empty slice.
func Normalize(text string) []string {
	return strings.Fields(normalizeText(text))
}

// NormalizePhrase collapses a string into its canonical token form,
// joined by single spaces. "Node.JS" and "node js" normalize to the
// same phrase.
func NormalizePhrase(text string) string {
	return strings.Join(Normalize(text), " ")
}

func normalizeText(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

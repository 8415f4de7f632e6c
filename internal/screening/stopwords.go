package screening

import "strings"

// StopWords is a set of tokens that are never treated as skills when
// extracting from free-form prose, even when a token collides with a
// taxonomy synonym.
type StopWords map[string]struct{}

func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		w = NormalizePhrase(w)
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

func (s StopWords) Contains(token string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// DefaultStopWords covers the filler vocabulary of resume and
// job-description prose ("we need a senior developer with...").
func DefaultStopWords() StopWords {
	return NewStopWords(
		"we", "need", "a", "an", "the", "and", "or", "for", "with",
		"to", "of", "in", "on", "developer", "engineer", "experience",
		"looking", "required",
	)
}

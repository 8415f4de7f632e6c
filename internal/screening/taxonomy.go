package screening

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

var (
	ErrEmptyCanonical   = errors.New("empty canonical skill name")
	ErrAmbiguousSynonym = errors.New("synonym maps to more than one canonical skill")
)

// Taxonomy is an immutable canonical-skill vocabulary. Every canonical
// name resolves to itself; every synonym resolves to exactly one
// canonical name. Build a new Taxonomy and swap it via TaxonomyStore
// instead of mutating one in place.
type Taxonomy struct {
	entries   map[string][]string
	bySynonym map[string]string
}

// NewTaxonomy validates and normalizes a canonical→synonyms map.
// Canonical names and synonyms are normalized to their phrase form, so
// "Node.JS" and "node js" are the same synonym. A synonym claimed by
// two canonical skills is rejected.
func NewTaxonomy(entries map[string][]string) (*Taxonomy, error) {
	t := &Taxonomy{
		entries:   make(map[string][]string, len(entries)),
		bySynonym: make(map[string]string, len(entries)*2),
	}

	canonicals := make([]string, 0, len(entries))
	for raw := range entries {
		c := NormalizePhrase(raw)
		if c == "" {
			return nil, ErrEmptyCanonical
		}
		if _, dup := t.entries[c]; dup {
			return nil, fmt.Errorf("duplicate canonical skill %q", c)
		}
		t.entries[c] = nil
		canonicals = append(canonicals, c)
	}
	sort.Strings(canonicals)

	// Deterministic iteration keeps ambiguity errors stable.
	byCanonical := make(map[string][]string, len(entries))
	for raw, syns := range entries {
		byCanonical[NormalizePhrase(raw)] = syns
	}

	for _, c := range canonicals {
		t.bySynonym[c] = c
		kept := make([]string, 0, len(byCanonical[c]))
		for _, raw := range byCanonical[c] {
			syn := NormalizePhrase(raw)
			if syn == "" || syn == c {
				continue
			}
			if owner, ok := t.bySynonym[syn]; ok && owner != c {
				return nil, fmt.Errorf("%w: %q claimed by %q and %q", ErrAmbiguousSynonym, syn, owner, c)
			}
			if _, ok := t.bySynonym[syn]; ok {
				continue
			}
			t.bySynonym[syn] = c
			kept = append(kept, syn)
		}
		t.entries[c] = kept
	}

	return t, nil
}

// Resolve maps a token or phrase to its canonical skill. Lookup is
// case-insensitive and whitespace-trimmed.
func (t *Taxonomy) Resolve(s string) (string, bool) {
	if t == nil {
		return "", false
	}
	c, ok := t.bySynonym[NormalizePhrase(strings.TrimSpace(s))]
	return c, ok
}

// Entries returns a defensive copy of the canonical→synonyms map.
func (t *Taxonomy) Entries() map[string][]string {
	if t == nil {
		return map[string][]string{}
	}
	out := make(map[string][]string, len(t.entries))
	for c, syns := range t.entries {
		cp := make([]string, len(syns))
		copy(cp, syns)
		out[c] = cp
	}
	return out
}

// Canonicals returns the sorted canonical skill names.
func (t *Taxonomy) Canonicals() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.entries))
	for c := range t.entries {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// TaxonomyStore holds the process-wide taxonomy snapshot. Readers get
// a complete immutable Taxonomy; Replace swaps the whole snapshot
// atomically so no reader ever observes a half-updated map.
type TaxonomyStore struct {
	current atomic.Pointer[Taxonomy]
}

func NewTaxonomyStore(t *Taxonomy) *TaxonomyStore {
	s := &TaxonomyStore{}
	if t == nil {
		t = &Taxonomy{entries: map[string][]string{}, bySynonym: map[string]string{}}
	}
	s.current.Store(t)
	return s
}

func (s *TaxonomyStore) Snapshot() *Taxonomy {
	if s == nil {
		return nil
	}
	return s.current.Load()
}

func (s *TaxonomyStore) Replace(t *Taxonomy) {
	if s == nil || t == nil {
		return
	}
	s.current.Store(t)
}

// DefaultTaxonomy is the built-in vocabulary used until an
// administrator replaces it.
func DefaultTaxonomy() *Taxonomy {
	t, err := NewTaxonomy(map[string][]string{
		"javascript": {"js", "java script"},
		"typescript": {"ts"},
		"react":      {"reactjs", "react js"},
		"node":       {"nodejs", "node js", "node.js"},
		"express":    {"expressjs", "express js"},
		"mongodb":    {"mongo"},
		"html":       {"html5"},
		"css":        {"css3"},
		"python":     {"py"},
		"java":       nil,
		"sql":        {"postgresql", "postgres", "mysql"},
	})
	if err != nil {
		panic(err)
	}
	return t
}

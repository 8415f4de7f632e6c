package screening

import "sort"

// SkillSet is a set of canonical skill identifiers.
type SkillSet map[string]struct{}

func NewSkillSet(skills ...string) SkillSet {
	s := make(SkillSet, len(skills))
	for _, sk := range skills {
		s.Add(sk)
	}
	return s
}

func (s SkillSet) Add(skill string) {
	norm := NormalizePhrase(skill)
	if norm == "" {
		return
	}
	s[norm] = struct{}{}
}

func (s SkillSet) Has(skill string) bool {
	_, ok := s[NormalizePhrase(skill)]
	return ok
}

func (s SkillSet) Len() int { return len(s) }

// Names returns the members sorted, for deterministic output.
func (s SkillSet) Names() []string {
	out := make([]string, 0, len(s))
	for sk := range s {
		out = append(out, sk)
	}
	sort.Strings(out)
	return out
}

// Intersect returns s ∩ other.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for sk := range s {
		if _, ok := other[sk]; ok {
			out[sk] = struct{}{}
		}
	}
	return out
}

// Subtract returns s − other.
func (s SkillSet) Subtract(other SkillSet) SkillSet {
	out := make(SkillSet)
	for sk := range s {
		if _, ok := other[sk]; !ok {
			out[sk] = struct{}{}
		}
	}
	return out
}

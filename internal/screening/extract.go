package screening

import "strings"

// Extract finds canonical skills mentioned in free text. Matching is
// phrase-aware and longest-match-first over normalized tokens, so
// "node.js" resolves through its "node js" form and "java" does not
// fire inside "javascript". Stop-word tokens never match single-token
// synonyms; pass nil stop-words when the input is an explicit skills
// list rather than prose. Empty input yields an empty set.
func Extract(text string, tax *Taxonomy, stop StopWords) SkillSet {
	found := make(SkillSet)
	if tax == nil || tax.Len() == 0 {
		return found
	}

	tokens := Normalize(text)
	if len(tokens) == 0 {
		return found
	}

	phrases := phraseIndex(tax)

	for i := 0; i < len(tokens); {
		runs, ok := phrases[tokens[i]]
		if !ok {
			i++
			continue
		}

		advanced := false
		for _, p := range runs { // longest first
			if i+len(p.tokens) > len(tokens) {
				continue
			}
			if !tokensMatch(tokens[i:i+len(p.tokens)], p.tokens) {
				continue
			}
			if len(p.tokens) == 1 && stop.Contains(p.tokens[0]) {
				continue
			}
			found[p.canonical] = struct{}{}
			i += len(p.tokens)
			advanced = true
			break
		}
		if !advanced {
			i++
		}
	}

	return found
}

type phrase struct {
	tokens    []string
	canonical string
}

// phraseIndex maps a first token to every synonym phrase starting with
// it, longest phrase first.
func phraseIndex(tax *Taxonomy) map[string][]phrase {
	idx := make(map[string][]phrase)
	add := func(form, canonical string) {
		toks := strings.Fields(form)
		if len(toks) == 0 {
			return
		}
		first := toks[0]
		list := idx[first]
		p := phrase{tokens: toks, canonical: canonical}

		// Insert keeping longer phrases ahead of shorter ones.
		pos := len(list)
		for j, existing := range list {
			if len(p.tokens) > len(existing.tokens) {
				pos = j
				break
			}
		}
		list = append(list, phrase{})
		copy(list[pos+1:], list[pos:])
		list[pos] = p
		idx[first] = list
	}

	for canonical, syns := range tax.Entries() {
		add(canonical, canonical)
		for _, syn := range syns {
			add(syn, canonical)
		}
	}
	return idx
}

func tokensMatch(window, want []string) bool {
	for i := range want {
		if window[i] != want[i] {
			return false
		}
	}
	return true
}

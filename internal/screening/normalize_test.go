package screening

import "testing"

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	got := Normalize("Senior Node.JS / React Developer (3+ yrs)")
	want := []string{"senior", "node", "js", "react", "developer", "3", "yrs"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); len(got) != 0 {
		t.Fatalf("expected empty token slice, got %v", got)
	}
	if got := Normalize("  \t\n  "); len(got) != 0 {
		t.Fatalf("expected empty token slice for whitespace, got %v", got)
	}
	if got := Normalize("!!! ---"); len(got) != 0 {
		t.Fatalf("expected empty token slice for punctuation, got %v", got)
	}
}

func TestNormalizePhrase_CollapsesVariants(t *testing.T) {
	if a, b := NormalizePhrase("Node.JS"), NormalizePhrase("node js"); a != b {
		t.Fatalf("expected %q == %q", a, b)
	}
	if got := NormalizePhrase(" C++ "); got != "c" {
		t.Fatalf("expected %q, got %q", "c", got)
	}
}

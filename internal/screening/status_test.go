package screening

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("  shortlisted ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != StatusShortlisted {
		t.Fatalf("expected Shortlisted, got %q", got)
	}

	if _, err := ParseStatus("archived"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if _, err := ParseStatus(""); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus for empty, got %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusPending, StatusApplied},
		{StatusApplied, StatusShortlisted},
		{StatusApplied, StatusRejected},
	}
	for _, tr := range allowed {
		if !CanTransition(tr[0], tr[1]) {
			t.Fatalf("expected %s → %s to be allowed", tr[0], tr[1])
		}
	}

	denied := [][2]Status{
		{StatusPending, StatusShortlisted},
		{StatusPending, StatusRejected},
		{StatusShortlisted, StatusApplied},
		{StatusRejected, StatusApplied},
		{StatusShortlisted, StatusRejected},
		{StatusApplied, StatusPending},
	}
	for _, tr := range denied {
		if CanTransition(tr[0], tr[1]) {
			t.Fatalf("expected %s → %s to be denied", tr[0], tr[1])
		}
	}
}

func TestCheckTransition_Errors(t *testing.T) {
	if err := CheckTransition(StatusPending, StatusShortlisted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := CheckTransition(Status("nope"), StatusApplied); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if err := CheckTransition(StatusApplied, StatusShortlisted); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSeverityIsTotal(t *testing.T) {
	cases := map[Status]Severity{
		StatusPending:     SeverityInfo,
		StatusApplied:     SeverityInfo,
		StatusShortlisted: SeveritySuccess,
		StatusRejected:    SeverityError,
	}
	for st, want := range cases {
		if got := st.Severity(); got != want {
			t.Fatalf("severity of %s: expected %s, got %s", st, want, got)
		}
	}
}

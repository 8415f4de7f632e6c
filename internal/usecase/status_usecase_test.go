package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-screen/internal/repository"
	"resume-screen/internal/screening"

	"github.com/google/uuid"
)

type mockNotificationRepo struct {
	inserted  []repository.Notification
	insertErr error
}

func (m *mockNotificationRepo) Insert(_ context.Context, n repository.Notification) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, n)
	return nil
}

func (m *mockNotificationRepo) ListByCandidate(context.Context, uuid.UUID) ([]repository.Notification, error) {
	return m.inserted, nil
}

func (m *mockNotificationRepo) MarkRead(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type mockAuditRepo struct {
	entries   []repository.AuditEntry
	appendErr error
}

func (m *mockAuditRepo) Append(_ context.Context, e repository.AuditEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockAuditRepo) ListByScreening(context.Context, uuid.UUID) ([]repository.AuditEntry, error) {
	return m.entries, nil
}

type statusFixture struct {
	candidateID   uuid.UUID
	recruiterID   uuid.UUID
	jobID         uuid.UUID
	screeningID   uuid.UUID
	screenings    *mockScreeningRepo
	notifications *mockNotificationRepo
	audit         *mockAuditRepo
	uc            *StatusWorkflow
}

func newStatusFixture(t *testing.T, status screening.Status) statusFixture {
	t.Helper()

	f := statusFixture{
		candidateID:   uuid.New(),
		recruiterID:   uuid.New(),
		jobID:         uuid.New(),
		screeningID:   uuid.New(),
		notifications: &mockNotificationRepo{},
		audit:         &mockAuditRepo{},
	}
	f.screenings = &mockScreeningRepo{byID: map[uuid.UUID]repository.ScreeningResult{
		f.screeningID: {
			ID:          f.screeningID,
			CandidateID: f.candidateID,
			JobID:       f.jobID,
			Status:      string(status),
		},
	}}
	jobs := &mockJobRepo{jobs: map[uuid.UUID]repository.Job{
		f.jobID: {ID: f.jobID, RecruiterID: f.recruiterID, Title: "Backend Engineer"},
	}}
	f.uc = NewStatusWorkflow(f.screenings, jobs, f.notifications, f.audit, nil)
	return f
}

func TestStatusWorkflow_CandidateAppliesOwnRecord(t *testing.T) {
	f := newStatusFixture(t, screening.StatusPending)

	out, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   f.candidateID,
		ActorRole: "jobseeker",
		Screening: f.screeningID,
		NewStatus: "applied",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Record.Status != string(screening.StatusApplied) {
		t.Fatalf("expected status Applied, got %q", out.Record.Status)
	}
	if out.Warning != "" {
		t.Fatalf("unexpected warning: %q", out.Warning)
	}
	if out.Notification == nil {
		t.Fatalf("expected a notification")
	}
	if out.Notification.Severity != string(screening.SeverityInfo) {
		t.Fatalf("expected info severity, got %q", out.Notification.Severity)
	}
	if got := f.screenings.updates[f.screeningID]; got != string(screening.StatusApplied) {
		t.Fatalf("expected persisted status Applied, got %q", got)
	}
	if len(f.audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(f.audit.entries))
	}
	if f.audit.entries[0].OldStatus != string(screening.StatusPending) {
		t.Fatalf("audit entry has wrong old status %q", f.audit.entries[0].OldStatus)
	}
}

func TestStatusWorkflow_CandidateCannotApplyForeignRecord(t *testing.T) {
	f := newStatusFixture(t, screening.StatusPending)

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   uuid.New(),
		ActorRole: "jobseeker",
		Screening: f.screeningID,
		NewStatus: "applied",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(f.screenings.updates) != 0 {
		t.Fatalf("status must not change on a denied transition")
	}
}

func TestStatusWorkflow_JobseekerCannotShortlist(t *testing.T) {
	f := newStatusFixture(t, screening.StatusApplied)

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   f.candidateID,
		ActorRole: "jobseeker",
		Screening: f.screeningID,
		NewStatus: "shortlisted",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestStatusWorkflow_RecruiterShortlistsApplied(t *testing.T) {
	f := newStatusFixture(t, screening.StatusApplied)

	out, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   uuid.New(),
		ActorRole: "recruiter",
		Screening: f.screeningID,
		NewStatus: "Shortlisted",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Notification == nil {
		t.Fatalf("expected a notification")
	}
	if out.Notification.Severity != string(screening.SeveritySuccess) {
		t.Fatalf("expected success severity, got %q", out.Notification.Severity)
	}
	if out.Notification.CandidateID != f.candidateID {
		t.Fatalf("notification must target the candidate")
	}
}

func TestStatusWorkflow_RejectYieldsErrorSeverity(t *testing.T) {
	f := newStatusFixture(t, screening.StatusApplied)

	out, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   uuid.New(),
		ActorRole: "recruiter",
		Screening: f.screeningID,
		NewStatus: "rejected",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Notification.Severity != string(screening.SeverityError) {
		t.Fatalf("expected error severity, got %q", out.Notification.Severity)
	}
}

func TestStatusWorkflow_ShortlistFromPendingDenied(t *testing.T) {
	f := newStatusFixture(t, screening.StatusPending)

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   uuid.New(),
		ActorRole: "recruiter",
		Screening: f.screeningID,
		NewStatus: "shortlisted",
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestStatusWorkflow_TerminalStatusFrozen(t *testing.T) {
	f := newStatusFixture(t, screening.StatusRejected)

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   uuid.New(),
		ActorRole: "recruiter",
		Screening: f.screeningID,
		NewStatus: "shortlisted",
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestStatusWorkflow_LostRaceCannotOverrideDecision(t *testing.T) {
	// The stored row was already decided, but this request read it
	// while it still said Applied. The conditional update must lose.
	f := newStatusFixture(t, screening.StatusShortlisted)
	f.screenings.staleStatus = string(screening.StatusApplied)

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   uuid.New(),
		ActorRole: "recruiter",
		Screening: f.screeningID,
		NewStatus: "rejected",
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if got := f.screenings.byID[f.screeningID].Status; got != string(screening.StatusShortlisted) {
		t.Fatalf("decided status must survive the race, got %q", got)
	}
	if len(f.notifications.inserted) != 0 || len(f.audit.entries) != 0 {
		t.Fatalf("a lost race must not emit side effects")
	}
}

func TestStatusWorkflow_NotificationFailureIsWarningOnly(t *testing.T) {
	f := newStatusFixture(t, screening.StatusApplied)
	f.notifications.insertErr = errors.New("notifications table unavailable")

	out, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   uuid.New(),
		ActorRole: "recruiter",
		Screening: f.screeningID,
		NewStatus: "shortlisted",
	})
	if err != nil {
		t.Fatalf("status change must survive side-effect failure, got %v", err)
	}
	if out.Warning == "" {
		t.Fatalf("expected a warning")
	}
	if out.Notification != nil {
		t.Fatalf("failed notification must not be reported as delivered")
	}
	if got := f.screenings.updates[f.screeningID]; got != string(screening.StatusShortlisted) {
		t.Fatalf("expected persisted status Shortlisted, got %q", got)
	}
}

func TestStatusWorkflow_ListForJob_OwnerOnly(t *testing.T) {
	f := newStatusFixture(t, screening.StatusApplied)

	items, err := f.uc.ListForJob(context.Background(), f.recruiterID, "recruiter", f.jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].ID != f.screeningID {
		t.Fatalf("expected the job's screening, got %v", items)
	}

	if _, err := f.uc.ListForJob(context.Background(), uuid.New(), "recruiter", f.jobID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a foreign recruiter, got %v", err)
	}

	// Admins see any job.
	if _, err := f.uc.ListForJob(context.Background(), uuid.New(), "admin", f.jobID); err != nil {
		t.Fatalf("admin should list any job, got %v", err)
	}
}

func TestStatusWorkflow_AuditTrail(t *testing.T) {
	f := newStatusFixture(t, screening.StatusPending)

	if _, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   f.candidateID,
		ActorRole: "jobseeker",
		Screening: f.screeningID,
		NewStatus: "applied",
	}); err != nil {
		t.Fatalf("transition: %v", err)
	}

	entries, err := f.uc.AuditTrail(context.Background(), f.screeningID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].NewStatus != string(screening.StatusApplied) {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}

	if _, err := f.uc.AuditTrail(context.Background(), uuid.New()); !errors.Is(err, ErrScreeningNotFound) {
		t.Fatalf("expected ErrScreeningNotFound, got %v", err)
	}
}

func TestStatusWorkflow_UnknownStatusRejected(t *testing.T) {
	f := newStatusFixture(t, screening.StatusPending)

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		ActorID:   f.candidateID,
		ActorRole: "jobseeker",
		Screening: f.screeningID,
		NewStatus: "archived",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

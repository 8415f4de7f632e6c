package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"resume-screen/internal/repository"
	"resume-screen/internal/screening"
	"resume-screen/internal/ws"

	"github.com/google/uuid"
)

// TransitionInput identifies who is moving which screening record to
// which status. Role comes from the verified token, not the payload.
type TransitionInput struct {
	ActorID   uuid.UUID
	ActorRole string
	Screening uuid.UUID
	NewStatus string
}

// TransitionOutcome reports the committed status change plus any
// side-effect failure. Warning is non-empty when the status was saved
// but a notification, audit entry or push could not be delivered.
type TransitionOutcome struct {
	Record       repository.ScreeningResult
	Notification *repository.Notification
	Warning      string
}

type StatusUsecase interface {
	Transition(ctx context.Context, in TransitionInput) (TransitionOutcome, error)
	ListForJob(ctx context.Context, actorID uuid.UUID, actorRole string, jobID uuid.UUID) ([]repository.ScreeningResult, error)
	AuditTrail(ctx context.Context, screeningID uuid.UUID) ([]repository.AuditEntry, error)
}

type StatusWorkflow struct {
	screenings    repository.ScreeningRepository
	jobs          repository.JobRepository
	notifications repository.NotificationRepository
	audit         repository.AuditLogRepository
	logger        *log.Logger
}

func NewStatusWorkflow(
	screenings repository.ScreeningRepository,
	jobs repository.JobRepository,
	notifications repository.NotificationRepository,
	audit repository.AuditLogRepository,
	logger *log.Logger,
) *StatusWorkflow {
	return &StatusWorkflow{
		screenings:    screenings,
		jobs:          jobs,
		notifications: notifications,
		audit:         audit,
		logger:        logger,
	}
}

// Transition applies one state-machine move. The status change is the
// primary operation and must succeed; notification, audit log and
// websocket push are best-effort and surface as a warning only.
func (u *StatusWorkflow) Transition(ctx context.Context, in TransitionInput) (TransitionOutcome, error) {
	if in.ActorID == uuid.Nil {
		return TransitionOutcome{}, ErrUnauthorized
	}

	to, err := screening.ParseStatus(in.NewStatus)
	if err != nil {
		return TransitionOutcome{}, ErrInvalidInput
	}

	rec, err := u.screenings.GetByID(ctx, in.Screening)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TransitionOutcome{}, ErrScreeningNotFound
		}
		return TransitionOutcome{}, ErrInternal
	}

	from, err := screening.ParseStatus(rec.Status)
	if err != nil {
		return TransitionOutcome{}, ErrInternal
	}

	if err := u.authorize(in, rec, to); err != nil {
		return TransitionOutcome{}, err
	}
	if err := screening.CheckTransition(from, to); err != nil {
		return TransitionOutcome{}, ErrInvalidTransition
	}

	// The update only lands when the status is still the one the
	// transition was validated against; a concurrent writer wins the
	// race and this request fails like any other invalid transition.
	if err := u.screenings.UpdateStatus(ctx, rec.ID, string(from), string(to)); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return TransitionOutcome{}, ErrInvalidTransition
		}
		return TransitionOutcome{}, ErrInternal
	}
	rec.Status = string(to)

	out := TransitionOutcome{Record: rec}
	out.Notification, out.Warning = u.sideEffects(ctx, in, rec, from, to)
	return out, nil
}

// ListForJob returns a job's screenings ranked by score, for the
// recruiter who posted it (admins see any job).
func (u *StatusWorkflow) ListForJob(ctx context.Context, actorID uuid.UUID, actorRole string, jobID uuid.UUID) ([]repository.ScreeningResult, error) {
	if actorID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if job.RecruiterID != actorID && actorRole != "admin" {
		return nil, ErrForbidden
	}

	out, err := u.screenings.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// AuditTrail returns the recorded status changes for one screening,
// oldest first.
func (u *StatusWorkflow) AuditTrail(ctx context.Context, screeningID uuid.UUID) ([]repository.AuditEntry, error) {
	if _, err := u.screenings.GetByID(ctx, screeningID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScreeningNotFound
		}
		return nil, ErrInternal
	}

	out, err := u.audit.ListByScreening(ctx, screeningID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// authorize: candidates may only submit their own pending record;
// recruiter/admin decide shortlist/reject.
func (u *StatusWorkflow) authorize(in TransitionInput, rec repository.ScreeningResult, to screening.Status) error {
	switch to {
	case screening.StatusApplied:
		if rec.CandidateID != in.ActorID {
			return ErrForbidden
		}
		return nil
	case screening.StatusShortlisted, screening.StatusRejected:
		if in.ActorRole != "recruiter" && in.ActorRole != "admin" {
			return ErrForbidden
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}

func (u *StatusWorkflow) sideEffects(ctx context.Context, in TransitionInput, rec repository.ScreeningResult, from, to screening.Status) (*repository.Notification, string) {
	var warning string
	warn := func(what string, err error) {
		if u.logger != nil {
			u.logger.Printf("status transition side effect failed | what=%s screening=%s err=%v", what, rec.ID, err)
		}
		if warning == "" {
			warning = what + " failed"
		}
	}

	jobTitle := "the position"
	if job, err := u.jobs.GetByID(ctx, rec.JobID); err == nil {
		jobTitle = job.Title
	}

	n := repository.Notification{
		ID:          uuid.New(),
		CandidateID: rec.CandidateID,
		Message:     notificationMessage(jobTitle, to),
		Severity:    string(to.Severity()),
	}
	var saved *repository.Notification
	if err := u.notifications.Insert(ctx, n); err != nil {
		warn("notification", err)
	} else {
		saved = &n
	}

	if err := u.audit.Append(ctx, repository.AuditEntry{
		ID:          uuid.New(),
		ScreeningID: rec.ID,
		ActorID:     in.ActorID,
		OldStatus:   string(from),
		NewStatus:   string(to),
	}); err != nil {
		warn("audit log", err)
	}

	if saved != nil {
		ws.NotifyStatusChanged(rec.CandidateID, ws.StatusChangedEvent{
			ScreeningID: rec.ID.String(),
			JobTitle:    jobTitle,
			Status:      string(to),
			Severity:    string(to.Severity()),
			Message:     saved.Message,
		})
	}

	return saved, warning
}

func notificationMessage(jobTitle string, to screening.Status) string {
	switch to {
	case screening.StatusApplied:
		return fmt.Sprintf("Your application for %q was submitted", jobTitle)
	case screening.StatusShortlisted:
		return fmt.Sprintf("Good news! You were shortlisted for %q", jobTitle)
	case screening.StatusRejected:
		return fmt.Sprintf("Your application for %q was not successful", jobTitle)
	default:
		return fmt.Sprintf("Your application for %q is now %s", jobTitle, to)
	}
}

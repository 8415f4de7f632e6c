package screening

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStatus     = errors.New("unknown application status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Status is the lifecycle state of a screening record.
//
// Pending is set when a screening result is first created (analysis
// only, not yet submitted). Shortlisted and Rejected are terminal; a
// new application creates a new record rather than reopening one.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusApplied     Status = "Applied"
	StatusShortlisted Status = "Shortlisted"
	StatusRejected    Status = "Rejected"
)

// ParseStatus accepts a status name case-insensitively and rejects
// everything else.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "applied":
		return StatusApplied, nil
	case "shortlisted":
		return StatusShortlisted, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApplied, StatusShortlisted, StatusRejected:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusShortlisted || s == StatusRejected
}

// CanTransition reports whether from→to is a legal move:
// Pending→Applied, Applied→Shortlisted, Applied→Rejected.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusApplied
	case StatusApplied:
		return to == StatusShortlisted || to == StatusRejected
	default:
		return false
	}
}

// CheckTransition is CanTransition with a descriptive error.
func CheckTransition(from, to Status) error {
	if !from.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(from))
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(to))
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// Severity classifies the notification raised by a transition into a
// status.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Severity is total over all statuses: Shortlisted is good news,
// Rejected is bad news, anything else is informational.
func (s Status) Severity() Severity {
	switch s {
	case StatusShortlisted:
		return SeveritySuccess
	case StatusRejected:
		return SeverityError
	default:
		return SeverityInfo
	}
}

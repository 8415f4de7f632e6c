package repository

import (
	"context"
	"time"

	"resume-screen/internal/database"

	"github.com/google/uuid"
)

// Notification is a candidate-facing message created as a side effect
// of a status transition. Immutable except for the read flag.
type Notification struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Message     string
	Severity    string
	Read        bool
	CreatedAt   time.Time
}

type NotificationRepository interface {
	Insert(ctx context.Context, n Notification) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, candidateID, notificationID uuid.UUID) error
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Insert(ctx context.Context, n Notification) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (id, candidate_id, message, severity, read)
		VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.CandidateID, n.Message, n.Severity, n.Read,
	)
	return err
}

func (r *PostgresNotificationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, candidate_id, message, severity, read, created_at
		FROM notifications WHERE candidate_id = $1 ORDER BY created_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.CandidateID, &n.Message, &n.Severity, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, candidateID, notificationID uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `
		UPDATE notifications SET read = TRUE WHERE id = $1 AND candidate_id = $2`,
		notificationID, candidateID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

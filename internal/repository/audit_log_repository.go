package repository

import (
	"context"
	"time"

	"resume-screen/internal/database"

	"github.com/google/uuid"
)

// AuditEntry records one status change: who moved which screening
// from where to where.
type AuditEntry struct {
	ID          uuid.UUID
	ScreeningID uuid.UUID
	ActorID     uuid.UUID
	OldStatus   string
	NewStatus   string
	CreatedAt   time.Time
}

type AuditLogRepository interface {
	Append(ctx context.Context, e AuditEntry) error
	ListByScreening(ctx context.Context, screeningID uuid.UUID) ([]AuditEntry, error)
}

type PostgresAuditLogRepository struct {
	db database.DB
}

func NewPostgresAuditLogRepository(db database.DB) *PostgresAuditLogRepository {
	return &PostgresAuditLogRepository{db: db}
}

func (r *PostgresAuditLogRepository) Append(ctx context.Context, e AuditEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO screening_audit_log (id, screening_id, actor_id, old_status, new_status)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.ScreeningID, e.ActorID, e.OldStatus, e.NewStatus,
	)
	return err
}

func (r *PostgresAuditLogRepository) ListByScreening(ctx context.Context, screeningID uuid.UUID) ([]AuditEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, screening_id, actor_id, old_status, new_status, created_at
		FROM screening_audit_log WHERE screening_id = $1 ORDER BY created_at ASC`, screeningID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AuditEntry, 0)
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.ScreeningID, &e.ActorID, &e.OldStatus, &e.NewStatus, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"resume-screen/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Job is a posted position. RequiredSkills is immutable after insert;
// changing requirements means posting a new job.
type Job struct {
	ID             uuid.UUID
	RecruiterID    uuid.UUID
	Title          string
	Description    string
	RequiredSkills []string
	CreatedAt      time.Time
}

type JobRepository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListIDsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j Job) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO jobs (id, recruiter_id, title, description, required_skills)
		VALUES ($1, $2, $3, $4, $5)`,
		j.ID, j.RecruiterID, j.Title, j.Description, j.RequiredSkills,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	var j Job
	row := r.db.QueryRow(ctx, `
		SELECT id, recruiter_id, title, description, required_skills, created_at
		FROM jobs WHERE id = $1`, id)
	if err := row.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.RequiredSkills, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListIDsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM jobs WHERE recruiter_id = $1`, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

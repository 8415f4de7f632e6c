package repository

import (
	"context"
	"errors"
	"time"

	"resume-screen/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrStatusConflict = errors.New("status changed concurrently")
)

// ScreeningResult is one persisted resume-to-job comparison. Only the
// status is mutable after creation, and only through UpdateStatus.
type ScreeningResult struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID

	MatchedSkills   []string
	MissingSkills   []string
	Score           int
	SkillsScore     int
	ExperienceScore int
	EducationScore  int

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ScreeningRepository interface {
	Create(ctx context.Context, s ScreeningResult) error
	GetByID(ctx context.Context, id uuid.UUID) (ScreeningResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]ScreeningResult, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ScreeningResult, error)
	AverageScoreByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (float64, error)
	CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int, error)
	CountByJobIDsAndStatus(ctx context.Context, jobIDs []uuid.UUID, status string) (int, error)
	CountByJobIDsWithMinScore(ctx context.Context, jobIDs []uuid.UUID, minScore int) (int, error)
}

type PostgresScreeningRepository struct {
	db database.DB
}

func NewPostgresScreeningRepository(db database.DB) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{db: db}
}

const screeningColumns = `id, candidate_id, job_id, matched_skills, missing_skills, score, skills_score, experience_score, education_score, status, created_at, updated_at`

func (r *PostgresScreeningRepository) Create(ctx context.Context, s ScreeningResult) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO screenings (id, candidate_id, job_id, matched_skills, missing_skills, score, skills_score, experience_score, education_score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.CandidateID, s.JobID, s.MatchedSkills, s.MissingSkills,
		s.Score, s.SkillsScore, s.ExperienceScore, s.EducationScore, s.Status,
	)
	return err
}

func (r *PostgresScreeningRepository) GetByID(ctx context.Context, id uuid.UUID) (ScreeningResult, error) {
	row := r.db.QueryRow(ctx, `SELECT `+screeningColumns+` FROM screenings WHERE id = $1`, id)
	return scanScreening(row)
}

// UpdateStatus is a compare-and-swap: the row only changes when its
// current status still equals from. Zero affected rows means another
// writer got there first.
func (r *PostgresScreeningRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	affected, err := r.db.Exec(ctx, `UPDATE screenings SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`, id, to, from)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *PostgresScreeningRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]ScreeningResult, error) {
	rows, err := r.db.Query(ctx, `SELECT `+screeningColumns+` FROM screenings WHERE candidate_id = $1 ORDER BY created_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ScreeningResult, 0)
	for rows.Next() {
		s, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresScreeningRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]ScreeningResult, error) {
	rows, err := r.db.Query(ctx, `SELECT `+screeningColumns+` FROM screenings WHERE job_id = $1 ORDER BY score DESC, created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ScreeningResult, 0)
	for rows.Next() {
		s, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresScreeningRepository) AverageScoreByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (float64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	var avg *float64
	row := r.db.QueryRow(ctx, `SELECT AVG(score) FROM screenings WHERE job_id = ANY($1)`, jobIDs)
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *PostgresScreeningRepository) CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (int, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM screenings WHERE job_id = ANY($1)`, jobIDs)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresScreeningRepository) CountByJobIDsAndStatus(ctx context.Context, jobIDs []uuid.UUID, status string) (int, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM screenings WHERE job_id = ANY($1) AND status = $2`, jobIDs, status)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresScreeningRepository) CountByJobIDsWithMinScore(ctx context.Context, jobIDs []uuid.UUID, minScore int) (int, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM screenings WHERE job_id = ANY($1) AND score >= $2`, jobIDs, minScore)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanScreening(row database.Row) (ScreeningResult, error) {
	var s ScreeningResult
	err := row.Scan(
		&s.ID, &s.CandidateID, &s.JobID, &s.MatchedSkills, &s.MissingSkills,
		&s.Score, &s.SkillsScore, &s.ExperienceScore, &s.EducationScore,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ScreeningResult{}, ErrNotFound
		}
		return ScreeningResult{}, err
	}
	return s, nil
}

package seeder

import (
	"context"
	"fmt"

	"resume-screen/internal/database"
)

// SchemaSeeder creates every table the repositories expect. Statements
// are idempotent so the runner can execute on every boot.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		recruiter_id UUID NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS screenings (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL,
		job_id UUID NOT NULL REFERENCES jobs (id),
		matched_skills TEXT[] NOT NULL DEFAULT '{}',
		missing_skills TEXT[] NOT NULL DEFAULT '{}',
		score INT NOT NULL,
		skills_score INT NOT NULL,
		experience_score INT NOT NULL,
		education_score INT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_screenings_candidate_id ON screenings (candidate_id)`,
	`CREATE INDEX IF NOT EXISTS idx_screenings_job_id ON screenings (job_id)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL,
		message TEXT NOT NULL,
		severity TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_candidate_id ON notifications (candidate_id)`,
	`CREATE TABLE IF NOT EXISTS screening_audit_log (
		id UUID PRIMARY KEY,
		screening_id UUID NOT NULL,
		actor_id UUID NOT NULL,
		old_status TEXT NOT NULL,
		new_status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS system_settings (
		id INT PRIMARY KEY,
		skills_weight INT NOT NULL,
		experience_weight INT NOT NULL,
		education_weight INT NOT NULL,
		min_shortlist_score INT NOT NULL,
		taxonomy JSONB NOT NULL DEFAULT '{}',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resume-screen/internal/database"

	"github.com/jackc/pgx/v5"
)

// Settings is the single-row system configuration document. Weight and
// taxonomy updates each replace their whole column in one UPDATE, so a
// concurrent reader sees either the old or the new document, never a
// mix; concurrent writers serialize on the row lock.
type Settings struct {
	SkillsWeight      int
	ExperienceWeight  int
	EducationWeight   int
	MinShortlistScore int
	Taxonomy          map[string][]string
	UpdatedAt         time.Time
}

type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	UpdateWeights(ctx context.Context, skills, experience, education int) error
	UpdateMinShortlistScore(ctx context.Context, score int) error
	ReplaceTaxonomy(ctx context.Context, taxonomy map[string][]string) error
}

type PostgresSettingsRepository struct {
	db database.DB
}

func NewPostgresSettingsRepository(db database.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(ctx context.Context) (Settings, error) {
	var s Settings
	var taxonomyJSON []byte
	row := r.db.QueryRow(ctx, `
		SELECT skills_weight, experience_weight, education_weight, min_shortlist_score, taxonomy, updated_at
		FROM system_settings WHERE id = 1`)
	if err := row.Scan(&s.SkillsWeight, &s.ExperienceWeight, &s.EducationWeight, &s.MinShortlistScore, &taxonomyJSON, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Settings{}, ErrNotFound
		}
		return Settings{}, err
	}

	s.Taxonomy = map[string][]string{}
	if len(taxonomyJSON) > 0 {
		if err := json.Unmarshal(taxonomyJSON, &s.Taxonomy); err != nil {
			return Settings{}, err
		}
	}
	return s, nil
}

func (r *PostgresSettingsRepository) UpdateWeights(ctx context.Context, skills, experience, education int) error {
	affected, err := r.db.Exec(ctx, `
		UPDATE system_settings
		SET skills_weight = $1, experience_weight = $2, education_weight = $3, updated_at = now()
		WHERE id = 1`,
		skills, experience, education,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresSettingsRepository) UpdateMinShortlistScore(ctx context.Context, score int) error {
	affected, err := r.db.Exec(ctx, `
		UPDATE system_settings SET min_shortlist_score = $1, updated_at = now() WHERE id = 1`, score)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresSettingsRepository) ReplaceTaxonomy(ctx context.Context, taxonomy map[string][]string) error {
	b, err := json.Marshal(taxonomy)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx, `
		UPDATE system_settings SET taxonomy = $1, updated_at = now() WHERE id = 1`, b)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

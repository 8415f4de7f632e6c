package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"resume-screen/internal/database"
	"resume-screen/internal/screening"
)

// SettingsSeeder inserts the single configuration row when missing.
// Existing values are never overwritten.
type SettingsSeeder struct{}

func (SettingsSeeder) Name() string { return "settings" }

const defaultMinShortlistScore = 70

func (SettingsSeeder) Run(ctx context.Context, db database.DB) error {
	taxonomyJSON, err := json.Marshal(screening.DefaultTaxonomy().Entries())
	if err != nil {
		return fmt.Errorf("marshal taxonomy: %w", err)
	}

	w := screening.DefaultWeights()
	_, err = db.Exec(ctx, `
		INSERT INTO system_settings (id, skills_weight, experience_weight, education_weight, min_shortlist_score, taxonomy)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		w.Skills, w.Experience, w.Education, defaultMinShortlistScore, taxonomyJSON,
	)
	return err
}

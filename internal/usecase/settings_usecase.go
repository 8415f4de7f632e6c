package usecase

import (
	"context"
	"log"
	"time"

	"resume-screen/internal/infrastructure/cache"
	"resume-screen/internal/repository"
	"resume-screen/internal/screening"
)

const (
	settingsCacheKey = "settings:current"
	settingsCacheTTL = 10 * time.Minute
)

// SettingsUsecase owns the process-wide scoring configuration: the
// weights, the minimum shortlist score and the skill taxonomy. Updates
// validate first and replace whole documents; the in-process taxonomy
// snapshot is swapped atomically after the database accepts the new
// map.
type SettingsUsecase interface {
	Current(ctx context.Context) (repository.Settings, error)
	CurrentWeights(ctx context.Context) (screening.Weights, error)
	UpdateWeights(ctx context.Context, w screening.Weights) error
	UpdateMinShortlistScore(ctx context.Context, score int) error
	Taxonomy() *screening.Taxonomy
	ReplaceTaxonomy(ctx context.Context, entries map[string][]string) error
}

type Setting struct {
	repo     repository.SettingsRepository
	taxonomy *screening.TaxonomyStore
	cache    *cache.Redis
	logger   *log.Logger
}

func NewSettingsUsecase(repo repository.SettingsRepository, taxonomy *screening.TaxonomyStore, c *cache.Redis, logger *log.Logger) *Setting {
	return &Setting{repo: repo, taxonomy: taxonomy, cache: c, logger: logger}
}

// LoadTaxonomy pulls the persisted taxonomy into the in-process
// snapshot. Called at startup; a corrupt stored map falls back to the
// built-in default rather than refusing to boot.
func (u *Setting) LoadTaxonomy(ctx context.Context) error {
	s, err := u.repo.Get(ctx)
	if err != nil {
		return err
	}
	if len(s.Taxonomy) == 0 {
		return nil
	}
	tax, err := screening.NewTaxonomy(s.Taxonomy)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("settings: stored taxonomy invalid, keeping default | err=%v", err)
		}
		return nil
	}
	u.taxonomy.Replace(tax)
	return nil
}

func (u *Setting) Current(ctx context.Context) (repository.Settings, error) {
	var cached repository.Settings
	if ok, _ := u.cache.GetJSON(ctx, settingsCacheKey, &cached); ok {
		return cached, nil
	}

	s, err := u.repo.Get(ctx)
	if err != nil {
		return repository.Settings{}, ErrInternal
	}
	_ = u.cache.SetJSON(ctx, settingsCacheKey, s, settingsCacheTTL)
	return s, nil
}

func (u *Setting) CurrentWeights(ctx context.Context) (screening.Weights, error) {
	s, err := u.Current(ctx)
	if err != nil {
		return screening.Weights{}, err
	}
	w := screening.Weights{Skills: s.SkillsWeight, Experience: s.ExperienceWeight, Education: s.EducationWeight}
	if err := w.Validate(); err != nil {
		// A hand-edited settings row must not poison every score.
		if u.logger != nil {
			u.logger.Printf("settings: stored weights invalid, using defaults | err=%v", err)
		}
		return screening.DefaultWeights(), nil
	}
	return w, nil
}

func (u *Setting) UpdateWeights(ctx context.Context, w screening.Weights) error {
	if err := w.Validate(); err != nil {
		return ErrInvalidWeights
	}
	if err := u.repo.UpdateWeights(ctx, w.Skills, w.Experience, w.Education); err != nil {
		return ErrInternal
	}
	_ = u.cache.Delete(ctx, settingsCacheKey)
	return nil
}

func (u *Setting) UpdateMinShortlistScore(ctx context.Context, score int) error {
	if score < 0 || score > 100 {
		return ErrInvalidInput
	}
	if err := u.repo.UpdateMinShortlistScore(ctx, score); err != nil {
		return ErrInternal
	}
	_ = u.cache.Delete(ctx, settingsCacheKey)
	return nil
}

func (u *Setting) Taxonomy() *screening.Taxonomy {
	return u.taxonomy.Snapshot()
}

func (u *Setting) ReplaceTaxonomy(ctx context.Context, entries map[string][]string) error {
	if len(entries) == 0 {
		return ErrInvalidTaxonomy
	}
	tax, err := screening.NewTaxonomy(entries)
	if err != nil {
		return ErrInvalidTaxonomy
	}

	// Persist first; only a committed taxonomy becomes visible.
	if err := u.repo.ReplaceTaxonomy(ctx, tax.Entries()); err != nil {
		return ErrInternal
	}
	u.taxonomy.Replace(tax)
	_ = u.cache.Delete(ctx, settingsCacheKey)
	return nil
}

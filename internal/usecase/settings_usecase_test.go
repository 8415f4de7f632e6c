package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"resume-screen/internal/repository"
	"resume-screen/internal/screening"
)

type mockSettingsRepo struct {
	settings      repository.Settings
	getErr        error
	weightUpdates [][3]int
	replaced      map[string][]string
	minUpdates    []int
}

func (m *mockSettingsRepo) Get(context.Context) (repository.Settings, error) {
	if m.getErr != nil {
		return repository.Settings{}, m.getErr
	}
	return m.settings, nil
}

func (m *mockSettingsRepo) UpdateWeights(_ context.Context, skills, experience, education int) error {
	m.weightUpdates = append(m.weightUpdates, [3]int{skills, experience, education})
	return nil
}

func (m *mockSettingsRepo) UpdateMinShortlistScore(_ context.Context, score int) error {
	m.minUpdates = append(m.minUpdates, score)
	return nil
}

func (m *mockSettingsRepo) ReplaceTaxonomy(_ context.Context, taxonomy map[string][]string) error {
	m.replaced = taxonomy
	return nil
}

func newSettingsFixture(repo *mockSettingsRepo) (*Setting, *screening.TaxonomyStore) {
	store := screening.NewTaxonomyStore(screening.DefaultTaxonomy())
	return NewSettingsUsecase(repo, store, nil, nil), store
}

func TestSettingsUsecase_UpdateWeights_RejectsBadSum(t *testing.T) {
	repo := &mockSettingsRepo{}
	uc, _ := newSettingsFixture(repo)

	err := uc.UpdateWeights(context.Background(), screening.Weights{Skills: 60, Experience: 25, Education: 5})
	if !errors.Is(err, ErrInvalidWeights) {
		t.Fatalf("expected ErrInvalidWeights, got %v", err)
	}
	if len(repo.weightUpdates) != 0 {
		t.Fatalf("invalid weights must not reach the repository")
	}
}

func TestSettingsUsecase_UpdateWeights_Persists(t *testing.T) {
	repo := &mockSettingsRepo{}
	uc, _ := newSettingsFixture(repo)

	if err := uc.UpdateWeights(context.Background(), screening.Weights{Skills: 50, Experience: 30, Education: 20}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.weightUpdates) != 1 || repo.weightUpdates[0] != [3]int{50, 30, 20} {
		t.Fatalf("unexpected persisted weights: %v", repo.weightUpdates)
	}
}

func TestSettingsUsecase_CurrentWeights_FallsBackOnCorruptRow(t *testing.T) {
	repo := &mockSettingsRepo{settings: repository.Settings{
		SkillsWeight:     90,
		ExperienceWeight: 90,
		EducationWeight:  90,
	}}
	var logs bytes.Buffer
	store := screening.NewTaxonomyStore(screening.DefaultTaxonomy())
	uc := NewSettingsUsecase(repo, store, nil, log.New(&logs, "", 0))

	w, err := uc.CurrentWeights(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if w != screening.DefaultWeights() {
		t.Fatalf("expected default weights, got %+v", w)
	}
	if !strings.Contains(logs.String(), "stored weights invalid") {
		t.Fatalf("fallback must be logged, got %q", logs.String())
	}
}

func TestSettingsUsecase_ReplaceTaxonomy_SwapsSnapshot(t *testing.T) {
	repo := &mockSettingsRepo{}
	uc, store := newSettingsFixture(repo)

	entries := map[string][]string{
		"golang": {"go"},
		"rust":   {"rustlang"},
	}
	if err := uc.ReplaceTaxonomy(context.Background(), entries); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.replaced == nil {
		t.Fatalf("expected taxonomy to be persisted")
	}

	tax := store.Snapshot()
	if c, ok := tax.Resolve("rustlang"); !ok || c != "rust" {
		t.Fatalf("new snapshot must resolve rustlang, got %q ok=%v", c, ok)
	}
	if _, ok := tax.Resolve("js"); ok {
		t.Fatalf("old synonyms must be gone after replacement")
	}
}

func TestSettingsUsecase_ReplaceTaxonomy_RejectsAmbiguousSynonym(t *testing.T) {
	repo := &mockSettingsRepo{}
	uc, store := newSettingsFixture(repo)
	before := store.Snapshot()

	entries := map[string][]string{
		"javascript": {"js"},
		"java":       {"js"},
	}
	err := uc.ReplaceTaxonomy(context.Background(), entries)
	if !errors.Is(err, ErrInvalidTaxonomy) {
		t.Fatalf("expected ErrInvalidTaxonomy, got %v", err)
	}
	if repo.replaced != nil {
		t.Fatalf("rejected taxonomy must not be persisted")
	}
	if store.Snapshot() != before {
		t.Fatalf("snapshot must be unchanged after a rejected replacement")
	}
}

func TestSettingsUsecase_UpdateMinShortlistScore_Bounds(t *testing.T) {
	repo := &mockSettingsRepo{}
	uc, _ := newSettingsFixture(repo)

	if err := uc.UpdateMinShortlistScore(context.Background(), 101); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 101, got %v", err)
	}
	if err := uc.UpdateMinShortlistScore(context.Background(), -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for -1, got %v", err)
	}
	if err := uc.UpdateMinShortlistScore(context.Background(), 70); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.minUpdates) != 1 || repo.minUpdates[0] != 70 {
		t.Fatalf("unexpected persisted scores: %v", repo.minUpdates)
	}
}

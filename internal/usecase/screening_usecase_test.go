package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-screen/internal/repository"
	"resume-screen/internal/screening"

	"github.com/google/uuid"
)

type mockScreeningRepo struct {
	created   []repository.ScreeningResult
	byID      map[uuid.UUID]repository.ScreeningResult
	updates   map[uuid.UUID]string
	createErr error
	getErr    error
	updateErr error

	// staleStatus, when set, is what GetByID reports regardless of the
	// stored row. Lets tests interleave a concurrent writer between
	// read and update.
	staleStatus string
}

func (m *mockScreeningRepo) Create(_ context.Context, s repository.ScreeningResult) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, s)
	return nil
}

func (m *mockScreeningRepo) GetByID(_ context.Context, id uuid.UUID) (repository.ScreeningResult, error) {
	if m.getErr != nil {
		return repository.ScreeningResult{}, m.getErr
	}
	rec, ok := m.byID[id]
	if !ok {
		return repository.ScreeningResult{}, repository.ErrNotFound
	}
	if m.staleStatus != "" {
		rec.Status = m.staleStatus
	}
	return rec, nil
}

func (m *mockScreeningRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	rec, ok := m.byID[id]
	if !ok || rec.Status != from {
		return repository.ErrStatusConflict
	}
	rec.Status = to
	m.byID[id] = rec
	if m.updates == nil {
		m.updates = map[uuid.UUID]string{}
	}
	m.updates[id] = to
	return nil
}

func (m *mockScreeningRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]repository.ScreeningResult, error) {
	out := make([]repository.ScreeningResult, 0)
	for _, rec := range m.byID {
		if rec.CandidateID == candidateID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockScreeningRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]repository.ScreeningResult, error) {
	out := make([]repository.ScreeningResult, 0)
	for _, rec := range m.byID {
		if rec.JobID == jobID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockScreeningRepo) AverageScoreByJobIDs(context.Context, []uuid.UUID) (float64, error) {
	return 0, nil
}
func (m *mockScreeningRepo) CountByJobIDs(context.Context, []uuid.UUID) (int, error) { return 0, nil }
func (m *mockScreeningRepo) CountByJobIDsAndStatus(context.Context, []uuid.UUID, string) (int, error) {
	return 0, nil
}
func (m *mockScreeningRepo) CountByJobIDsWithMinScore(context.Context, []uuid.UUID, int) (int, error) {
	return 0, nil
}

type mockJobRepo struct {
	jobs map[uuid.UUID]repository.Job
	err  error
}

func (m *mockJobRepo) Create(context.Context, repository.Job) error { return nil }

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Job, error) {
	if m.err != nil {
		return repository.Job{}, m.err
	}
	j, ok := m.jobs[id]
	if !ok {
		return repository.Job{}, repository.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListIDsByRecruiter(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

// stubSettings serves fixed weights and the built-in taxonomy without
// touching a database.
type stubSettings struct {
	weights      screening.Weights
	minShortlist int
	tax          *screening.Taxonomy
}

func (s stubSettings) Current(context.Context) (repository.Settings, error) {
	return repository.Settings{
		SkillsWeight:      s.weights.Skills,
		ExperienceWeight:  s.weights.Experience,
		EducationWeight:   s.weights.Education,
		MinShortlistScore: s.minShortlist,
	}, nil
}
func (s stubSettings) CurrentWeights(context.Context) (screening.Weights, error) {
	return s.weights, nil
}
func (s stubSettings) UpdateWeights(context.Context, screening.Weights) error { return nil }
func (s stubSettings) UpdateMinShortlistScore(context.Context, int) error     { return nil }
func (s stubSettings) Taxonomy() *screening.Taxonomy {
	if s.tax != nil {
		return s.tax
	}
	return screening.DefaultTaxonomy()
}
func (s stubSettings) ReplaceTaxonomy(context.Context, map[string][]string) error { return nil }

func defaultStubSettings() stubSettings {
	return stubSettings{weights: screening.DefaultWeights()}
}

func TestScreeningUsecase_Analyze_MatchesSynonymsAndPersists(t *testing.T) {
	candidateID := uuid.New()
	jobID := uuid.New()

	screenings := &mockScreeningRepo{}
	jobs := &mockJobRepo{jobs: map[uuid.UUID]repository.Job{jobID: {
		ID:             jobID,
		Title:          "Frontend Engineer",
		RequiredSkills: []string{"js", "react", "node js", "mongo"},
	}}}

	uc := NewScreeningUsecase(screenings, jobs, defaultStubSettings())

	rec, res, err := uc.Analyze(context.Background(), AnalyzeInput{
		CandidateID: candidateID,
		JobID:       jobID,
		ResumeText:  "Senior JS developer, shipped Node.js services backed by MongoDB.",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// js resolves to javascript, node.js to node, mongodb stays. React
	// never appears, so 3 of 4 requirements match.
	if res.Breakdown.Skills != 75 {
		t.Fatalf("expected skills sub-score 75, got %d", res.Breakdown.Skills)
	}
	if len(res.MatchedSkills) != 3 {
		t.Fatalf("expected 3 matched skills, got %v", res.MatchedSkills)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "react" {
		t.Fatalf("expected react missing, got %v", res.MissingSkills)
	}

	// No experience or education signal: 75*60/100 rounded.
	if res.Score != 45 {
		t.Fatalf("expected overall score 45, got %d", res.Score)
	}

	if rec.Status != string(screening.StatusPending) {
		t.Fatalf("expected status %q, got %q", screening.StatusPending, rec.Status)
	}
	if len(screenings.created) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(screenings.created))
	}
	if screenings.created[0].CandidateID != candidateID {
		t.Fatalf("persisted record has wrong candidate")
	}
}

func TestScreeningUsecase_Analyze_ProseFillerNeverMatchesSynonyms(t *testing.T) {
	jobID := uuid.New()

	// A replaceable taxonomy can map filler vocabulary to a skill; the
	// prose path must still suppress it.
	tax, err := screening.NewTaxonomy(map[string][]string{
		"golang": {"go", "experience"},
	})
	if err != nil {
		t.Fatalf("taxonomy: %v", err)
	}

	screenings := &mockScreeningRepo{}
	jobs := &mockJobRepo{jobs: map[uuid.UUID]repository.Job{jobID: {
		ID:             jobID,
		RequiredSkills: []string{"golang"},
	}}}
	uc := NewScreeningUsecase(screenings, jobs, stubSettings{weights: screening.DefaultWeights(), tax: tax})

	_, res, err := uc.Analyze(context.Background(), AnalyzeInput{
		CandidateID: uuid.New(),
		JobID:       jobID,
		ResumeText:  "Five years of hands on experience with distributed systems.",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.MatchedSkills) != 0 {
		t.Fatalf("filler word must not count as a skill, got %v", res.MatchedSkills)
	}

	// An explicit skill list is not prose; the same token resolves.
	preview, err := uc.AnalyzeOnly(context.Background(), []string{"experience"}, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(preview.MatchedSkills) != 1 || preview.MatchedSkills[0] != "golang" {
		t.Fatalf("explicit list must resolve through the taxonomy, got %v", preview.MatchedSkills)
	}
}

func TestScreeningUsecase_Analyze_JobNotFound(t *testing.T) {
	uc := NewScreeningUsecase(&mockScreeningRepo{}, &mockJobRepo{}, defaultStubSettings())

	_, _, err := uc.Analyze(context.Background(), AnalyzeInput{
		CandidateID: uuid.New(),
		JobID:       uuid.New(),
		ResumeText:  "anything",
	})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestScreeningUsecase_AnalyzeOnly_DoesNotPersist(t *testing.T) {
	jobID := uuid.New()
	screenings := &mockScreeningRepo{}
	jobs := &mockJobRepo{jobs: map[uuid.UUID]repository.Job{jobID: {
		ID:             jobID,
		RequiredSkills: []string{"python", "sql"},
	}}}

	uc := NewScreeningUsecase(screenings, jobs, defaultStubSettings())

	res, err := uc.AnalyzeOnly(context.Background(), []string{"py", "postgres"}, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Breakdown.Skills != 100 {
		t.Fatalf("expected full skill match, got %d", res.Breakdown.Skills)
	}
	if len(screenings.created) != 0 {
		t.Fatalf("expected nothing persisted, got %d records", len(screenings.created))
	}
}

func TestScreeningUsecase_Get_ForbiddenForOtherCandidate(t *testing.T) {
	owner := uuid.New()
	recID := uuid.New()
	screenings := &mockScreeningRepo{byID: map[uuid.UUID]repository.ScreeningResult{
		recID: {ID: recID, CandidateID: owner, Status: string(screening.StatusPending)},
	}}

	uc := NewScreeningUsecase(screenings, &mockJobRepo{}, defaultStubSettings())

	if _, err := uc.Get(context.Background(), uuid.New(), recID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.Get(context.Background(), owner, recID); err != nil {
		t.Fatalf("owner should read own record, got %v", err)
	}
}

func TestScreeningUsecase_Get_NotFound(t *testing.T) {
	uc := NewScreeningUsecase(&mockScreeningRepo{}, &mockJobRepo{}, defaultStubSettings())
	if _, err := uc.Get(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrScreeningNotFound) {
		t.Fatalf("expected ErrScreeningNotFound, got %v", err)
	}
}

func TestScreeningUsecase_History_StatusFilter(t *testing.T) {
	candidateID := uuid.New()
	pendingID, appliedID := uuid.New(), uuid.New()
	screenings := &mockScreeningRepo{byID: map[uuid.UUID]repository.ScreeningResult{
		pendingID: {ID: pendingID, CandidateID: candidateID, Status: string(screening.StatusPending)},
		appliedID: {ID: appliedID, CandidateID: candidateID, Status: string(screening.StatusApplied)},
	}}
	uc := NewScreeningUsecase(screenings, &mockJobRepo{}, defaultStubSettings())

	all, err := uc.History(context.Background(), candidateID, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}

	applied, err := uc.History(context.Background(), candidateID, "applied")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(applied) != 1 || applied[0].ID != appliedID {
		t.Fatalf("expected only the applied record, got %v", applied)
	}

	if _, err := uc.History(context.Background(), candidateID, "archived"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown filter, got %v", err)
	}
}

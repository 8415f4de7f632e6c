package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-screen/internal/repository"
	"resume-screen/internal/screening"

	"github.com/google/uuid"
)

type aggJobRepo struct {
	ids []uuid.UUID
	err error
}

func (m aggJobRepo) Create(context.Context, repository.Job) error { return nil }
func (m aggJobRepo) GetByID(context.Context, uuid.UUID) (repository.Job, error) {
	return repository.Job{}, repository.ErrNotFound
}
func (m aggJobRepo) ListIDsByRecruiter(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return m.ids, m.err
}

type aggScreeningRepo struct {
	total       int
	average     float64
	shortlisted int
	rejected    int
	aboveBar    int
}

func (m aggScreeningRepo) Create(context.Context, repository.ScreeningResult) error { return nil }
func (m aggScreeningRepo) GetByID(context.Context, uuid.UUID) (repository.ScreeningResult, error) {
	return repository.ScreeningResult{}, repository.ErrNotFound
}
func (m aggScreeningRepo) UpdateStatus(context.Context, uuid.UUID, string, string) error {
	return nil
}
func (m aggScreeningRepo) ListByCandidate(context.Context, uuid.UUID) ([]repository.ScreeningResult, error) {
	return nil, nil
}
func (m aggScreeningRepo) AverageScoreByJobIDs(context.Context, []uuid.UUID) (float64, error) {
	return m.average, nil
}
func (m aggScreeningRepo) CountByJobIDs(context.Context, []uuid.UUID) (int, error) {
	return m.total, nil
}
func (m aggScreeningRepo) ListByJob(context.Context, uuid.UUID) ([]repository.ScreeningResult, error) {
	return nil, nil
}
func (m aggScreeningRepo) CountByJobIDsAndStatus(_ context.Context, _ []uuid.UUID, status string) (int, error) {
	if status == "Shortlisted" {
		return m.shortlisted, nil
	}
	return m.rejected, nil
}
func (m aggScreeningRepo) CountByJobIDsWithMinScore(context.Context, []uuid.UUID, int) (int, error) {
	return m.aboveBar, nil
}

func TestAnalyticsUsecase_Dashboard(t *testing.T) {
	uc := NewAnalyticsUsecase(
		aggJobRepo{ids: []uuid.UUID{uuid.New(), uuid.New()}},
		aggScreeningRepo{total: 14, average: 62.5, shortlisted: 3, rejected: 5, aboveBar: 6},
		stubSettings{weights: screening.DefaultWeights(), minShortlist: 70},
		nil,
	)

	d, err := uc.Dashboard(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.TotalJobs != 2 {
		t.Fatalf("expected 2 jobs, got %d", d.TotalJobs)
	}
	if d.TotalApplications != 14 {
		t.Fatalf("expected 14 applications, got %d", d.TotalApplications)
	}
	if d.AverageScore != 62.5 {
		t.Fatalf("expected average 62.5, got %v", d.AverageScore)
	}
	if d.Shortlisted != 3 || d.Rejected != 5 {
		t.Fatalf("unexpected outcome counts: %+v", d)
	}
	if d.MinShortlistScore != 70 || d.AboveShortlistBar != 6 {
		t.Fatalf("unexpected shortlist bar stats: %+v", d)
	}
}

func TestAnalyticsUsecase_Dashboard_NoJobs(t *testing.T) {
	uc := NewAnalyticsUsecase(aggJobRepo{}, aggScreeningRepo{total: 99}, defaultStubSettings(), nil)

	d, err := uc.Dashboard(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.TotalJobs != 0 || d.TotalApplications != 0 || d.AboveShortlistBar != 0 {
		t.Fatalf("expected empty dashboard, got %+v", d)
	}
}

func TestAnalyticsUsecase_Dashboard_RequiresRecruiter(t *testing.T) {
	uc := NewAnalyticsUsecase(aggJobRepo{}, aggScreeningRepo{}, defaultStubSettings(), nil)

	if _, err := uc.Dashboard(context.Background(), uuid.Nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

package usecase

import (
	"context"
	"time"

	"resume-screen/internal/infrastructure/cache"
	"resume-screen/internal/repository"
	"resume-screen/internal/screening"

	"github.com/google/uuid"
)

const analyticsCacheTTL = 2 * time.Minute

// RecruiterDashboard aggregates screening outcomes across one
// recruiter's job postings.
type RecruiterDashboard struct {
	TotalJobs         int     `json:"total_jobs"`
	TotalApplications int     `json:"total_applications"`
	AverageScore      float64 `json:"average_score"`
	Shortlisted       int     `json:"shortlisted"`
	Rejected          int     `json:"rejected"`

	// Candidates scoring at or above the configured shortlist bar,
	// regardless of their current status.
	MinShortlistScore int `json:"min_shortlist_score"`
	AboveShortlistBar int `json:"above_shortlist_bar"`
}

type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, recruiterID uuid.UUID) (RecruiterDashboard, error)
}

type Analytics struct {
	jobs       repository.JobRepository
	screenings repository.ScreeningRepository
	settings   SettingsUsecase
	cache      *cache.Redis
}

func NewAnalyticsUsecase(jobs repository.JobRepository, screenings repository.ScreeningRepository, settings SettingsUsecase, c *cache.Redis) *Analytics {
	return &Analytics{jobs: jobs, screenings: screenings, settings: settings, cache: c}
}

func (u *Analytics) Dashboard(ctx context.Context, recruiterID uuid.UUID) (RecruiterDashboard, error) {
	if recruiterID == uuid.Nil {
		return RecruiterDashboard{}, ErrUnauthorized
	}

	key := "analytics:recruiter:" + recruiterID.String()
	var cached RecruiterDashboard
	if ok, _ := u.cache.GetJSON(ctx, key, &cached); ok {
		return cached, nil
	}

	jobIDs, err := u.jobs.ListIDsByRecruiter(ctx, recruiterID)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}

	d := RecruiterDashboard{TotalJobs: len(jobIDs)}
	if s, err := u.settings.Current(ctx); err == nil {
		d.MinShortlistScore = s.MinShortlistScore
	}
	if len(jobIDs) > 0 {
		if d.TotalApplications, err = u.screenings.CountByJobIDs(ctx, jobIDs); err != nil {
			return RecruiterDashboard{}, ErrInternal
		}
		if d.AverageScore, err = u.screenings.AverageScoreByJobIDs(ctx, jobIDs); err != nil {
			return RecruiterDashboard{}, ErrInternal
		}
		if d.Shortlisted, err = u.screenings.CountByJobIDsAndStatus(ctx, jobIDs, string(screening.StatusShortlisted)); err != nil {
			return RecruiterDashboard{}, ErrInternal
		}
		if d.Rejected, err = u.screenings.CountByJobIDsAndStatus(ctx, jobIDs, string(screening.StatusRejected)); err != nil {
			return RecruiterDashboard{}, ErrInternal
		}
		if d.AboveShortlistBar, err = u.screenings.CountByJobIDsWithMinScore(ctx, jobIDs, d.MinShortlistScore); err != nil {
			return RecruiterDashboard{}, ErrInternal
		}
	}

	_ = u.cache.SetJSON(ctx, key, d, analyticsCacheTTL)
	return d, nil
}

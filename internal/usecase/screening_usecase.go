package usecase

import (
	"context"
	"errors"

	"resume-screen/internal/repository"
	"resume-screen/internal/screening"

	"github.com/google/uuid"
)

// AnalyzeInput carries one resume-to-job comparison request. The
// resume text arrives already extracted to plain text; experience and
// education are optional signals.
type AnalyzeInput struct {
	CandidateID     uuid.UUID
	JobID           uuid.UUID
	ResumeText      string
	ExperienceYears *int
	EducationLevel  string
}

type ScreeningUsecase interface {
	Analyze(ctx context.Context, in AnalyzeInput) (repository.ScreeningResult, screening.Result, error)
	AnalyzeOnly(ctx context.Context, candidateSkills []string, jobID uuid.UUID) (screening.Result, error)
	Get(ctx context.Context, candidateID, screeningID uuid.UUID) (repository.ScreeningResult, error)
	History(ctx context.Context, candidateID uuid.UUID, status string) ([]repository.ScreeningResult, error)
}

type Screening struct {
	screenings repository.ScreeningRepository
	jobs       repository.JobRepository
	settings   SettingsUsecase
}

func NewScreeningUsecase(screenings repository.ScreeningRepository, jobs repository.JobRepository, settings SettingsUsecase) *Screening {
	return &Screening{screenings: screenings, jobs: jobs, settings: settings}
}

// Analyze extracts skills from the resume text, scores them against
// the job's requirements under the current weights and persists the
// result with status Pending.
func (u *Screening) Analyze(ctx context.Context, in AnalyzeInput) (repository.ScreeningResult, screening.Result, error) {
	if in.CandidateID == uuid.Nil {
		return repository.ScreeningResult{}, screening.Result{}, ErrUnauthorized
	}
	if in.JobID == uuid.Nil {
		return repository.ScreeningResult{}, screening.Result{}, ErrJobNotFound
	}

	job, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ScreeningResult{}, screening.Result{}, ErrJobNotFound
		}
		return repository.ScreeningResult{}, screening.Result{}, ErrInternal
	}

	weights, err := u.settings.CurrentWeights(ctx)
	if err != nil {
		return repository.ScreeningResult{}, screening.Result{}, ErrInternal
	}

	// Resume text is prose, so filler tokens are filtered; the job's
	// requirement list is explicit and resolves unfiltered below.
	tax := u.settings.Taxonomy()
	candidateSkills := screening.Extract(in.ResumeText, tax, screening.DefaultStopWords())
	requiredSkills := canonicalRequirements(job.RequiredSkills, tax)

	res := screening.Score(screening.ScoreInput{
		CandidateSkills: candidateSkills,
		RequiredSkills:  requiredSkills,
		Weights:         weights,
		ExperienceYears: in.ExperienceYears,
		EducationLevel:  in.EducationLevel,
	})

	rec := repository.ScreeningResult{
		ID:              uuid.New(),
		CandidateID:     in.CandidateID,
		JobID:           in.JobID,
		MatchedSkills:   res.MatchedSkills,
		MissingSkills:   res.MissingSkills,
		Score:           res.Score,
		SkillsScore:     res.Breakdown.Skills,
		ExperienceScore: res.Breakdown.Experience,
		EducationScore:  res.Breakdown.Education,
		Status:          string(screening.StatusPending),
	}
	if err := u.screenings.Create(ctx, rec); err != nil {
		return repository.ScreeningResult{}, screening.Result{}, ErrInternal
	}

	return rec, res, nil
}

// AnalyzeOnly scores an explicit candidate skill list against a job
// without persisting anything.
func (u *Screening) AnalyzeOnly(ctx context.Context, candidateSkills []string, jobID uuid.UUID) (screening.Result, error) {
	if jobID == uuid.Nil {
		return screening.Result{}, ErrJobNotFound
	}
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return screening.Result{}, ErrJobNotFound
		}
		return screening.Result{}, ErrInternal
	}

	weights, err := u.settings.CurrentWeights(ctx)
	if err != nil {
		return screening.Result{}, ErrInternal
	}

	tax := u.settings.Taxonomy()
	return screening.Score(screening.ScoreInput{
		CandidateSkills: canonicalRequirements(candidateSkills, tax),
		RequiredSkills:  canonicalRequirements(job.RequiredSkills, tax),
		Weights:         weights,
	}), nil
}

func (u *Screening) Get(ctx context.Context, candidateID, screeningID uuid.UUID) (repository.ScreeningResult, error) {
	if candidateID == uuid.Nil {
		return repository.ScreeningResult{}, ErrUnauthorized
	}
	rec, err := u.screenings.GetByID(ctx, screeningID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ScreeningResult{}, ErrScreeningNotFound
		}
		return repository.ScreeningResult{}, ErrInternal
	}
	if rec.CandidateID != candidateID {
		return repository.ScreeningResult{}, ErrForbidden
	}
	return rec, nil
}

// History lists the candidate's screenings, newest first, optionally
// filtered to one status.
func (u *Screening) History(ctx context.Context, candidateID uuid.UUID, status string) ([]repository.ScreeningResult, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	var filter screening.Status
	if status != "" {
		st, err := screening.ParseStatus(status)
		if err != nil {
			return nil, ErrInvalidInput
		}
		filter = st
	}

	items, err := u.screenings.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	if filter == "" {
		return items, nil
	}

	out := make([]repository.ScreeningResult, 0, len(items))
	for _, rec := range items {
		if rec.Status == string(filter) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// canonicalRequirements resolves each listed skill through the
// taxonomy so stored synonyms ("js") and canonical names compare
// equal. Unresolved names are kept in normalized form.
func canonicalRequirements(skills []string, tax *screening.Taxonomy) screening.SkillSet {
	set := screening.NewSkillSet()
	for _, s := range skills {
		if c, ok := tax.Resolve(s); ok {
			set.Add(c)
			continue
		}
		set.Add(s)
	}
	return set
}

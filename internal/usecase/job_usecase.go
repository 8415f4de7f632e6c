package usecase

import (
	"context"
	"errors"
	"strings"

	"resume-screen/internal/repository"

	"github.com/google/uuid"
)

type PostJobInput struct {
	RecruiterID    uuid.UUID
	Title          string
	Description    string
	RequiredSkills []string
}

type JobUsecase interface {
	PostJob(ctx context.Context, in PostJobInput) (repository.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (repository.Job, error)
}

type Jobs struct {
	repo repository.JobRepository
}

func NewJobUsecase(repo repository.JobRepository) *Jobs {
	return &Jobs{repo: repo}
}

// PostJob creates a posting with its requirement set. Requirements
// are immutable afterwards; changing them means posting a new job.
func (u *Jobs) PostJob(ctx context.Context, in PostJobInput) (repository.Job, error) {
	if in.RecruiterID == uuid.Nil {
		return repository.Job{}, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return repository.Job{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(in.RequiredSkills))
	seen := map[string]struct{}{}
	for _, s := range in.RequiredSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}

	j := repository.Job{
		ID:             uuid.New(),
		RecruiterID:    in.RecruiterID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		RequiredSkills: skills,
	}
	if err := u.repo.Create(ctx, j); err != nil {
		return repository.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (repository.Job, error) {
	if id == uuid.Nil {
		return repository.Job{}, ErrJobNotFound
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Job{}, ErrJobNotFound
		}
		return repository.Job{}, ErrInternal
	}
	return j, nil
}

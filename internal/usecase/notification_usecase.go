package usecase

import (
	"context"
	"errors"

	"resume-screen/internal/repository"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	List(ctx context.Context, candidateID uuid.UUID) ([]repository.Notification, error)
	MarkRead(ctx context.Context, candidateID, notificationID uuid.UUID) error
}

type Notifications struct {
	repo repository.NotificationRepository
}

func NewNotificationUsecase(repo repository.NotificationRepository) *Notifications {
	return &Notifications{repo: repo}
}

func (u *Notifications) List(ctx context.Context, candidateID uuid.UUID) ([]repository.Notification, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.repo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Notifications) MarkRead(ctx context.Context, candidateID, notificationID uuid.UUID) error {
	if candidateID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.repo.MarkRead(ctx, candidateID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}

package handler

import (
	"resume-screen/internal/delivery/http/dto"
	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/pkg/response"
	"resume-screen/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/notifications")
	grp.Get("/", h.List)
	grp.Patch("/:notification_id/read", h.MarkRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), candidateID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Severity:  n.Severity,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	notificationID, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.MarkRead(c.Context(), candidateID, notificationID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

package handler

import (
	"resume-screen/internal/delivery/http/dto"
	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/pkg/response"
	"resume-screen/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// StatusHandler exposes the recruiter-side status decision:
// Applied → Shortlisted or Applied → Rejected.
type StatusHandler struct {
	uc usecase.StatusUsecase
}

type updateStatusRequest struct {
	NewStatus string `json:"new_status"`
}

type updateStatusResponse struct {
	Record       dto.ScreeningResultResponse `json:"record"`
	Notification *dto.NotificationResponse   `json:"notification,omitempty"`
}

func NewStatusHandler(uc usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Patch("/screenings/:screening_id/status", h.UpdateStatus)
	r.Get("/screenings/:screening_id/audit", h.AuditTrail)
	r.Get("/jobs/:job_id/screenings", h.ListForJob)
}

func (h *StatusHandler) UpdateStatus(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := c.Locals(middleware.CtxRoleKey).(string)

	screeningID, err := uuid.Parse(c.Params("screening_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.Transition(c.Context(), usecase.TransitionInput{
		ActorID:   actorID,
		ActorRole: role,
		Screening: screeningID,
		NewStatus: req.NewStatus,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	data := updateStatusResponse{Record: screeningResponse(out.Record)}
	if out.Notification != nil {
		data.Notification = &dto.NotificationResponse{
			ID:        out.Notification.ID,
			Message:   out.Notification.Message,
			Severity:  out.Notification.Severity,
			Read:      out.Notification.Read,
			CreatedAt: out.Notification.CreatedAt,
		}
	}

	if out.Warning != "" {
		return response.SuccessWithWarning(c, fiber.StatusOK, "Status updated", out.Warning, data)
	}
	return response.Success(c, fiber.StatusOK, "Status updated", data)
}

// ListForJob shows a recruiter the screenings against one of their
// postings, ranked by score.
func (h *StatusHandler) ListForJob(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := c.Locals(middleware.CtxRoleKey).(string)

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListForJob(c.Context(), actorID, role, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ScreeningResultResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, screeningResponse(rec))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *StatusHandler) AuditTrail(c fiber.Ctx) error {
	screeningID, err := uuid.Parse(c.Params("screening_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	entries, err := h.uc.AuditTrail(c.Context(), screeningID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditEntryResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			OldStatus: e.OldStatus,
			NewStatus: e.NewStatus,
			CreatedAt: e.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

package handler

import (
	"resume-screen/internal/delivery/http/dto"
	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/pkg/response"
	"resume-screen/internal/repository"
	"resume-screen/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type postJobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterWriteRoutes mounts the recruiter-only posting endpoint.
// Read access is registered separately for every authenticated user.
func (h *JobHandler) RegisterWriteRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs", h.PostJob)
}

func (h *JobHandler) RegisterReadRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs/:job_id", h.GetJob)
}

func (h *JobHandler) PostJob(c fiber.Ctx) error {
	recruiterID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.PostJob(c.Context(), usecase.PostJobInput{
		RecruiterID:    recruiterID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job posted successfully", jobResponse(j))
}

func (h *JobHandler) GetJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.GetJob(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponse(j))
}

func jobResponse(j repository.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		RequiredSkills: j.RequiredSkills,
		CreatedAt:      j.CreatedAt,
	}
}

package handler

import (
	"resume-screen/internal/delivery/http/dto"
	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/pkg/response"
	"resume-screen/internal/repository"
	"resume-screen/internal/screening"
	"resume-screen/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ScreeningHandler struct {
	uc     usecase.ScreeningUsecase
	status usecase.StatusUsecase
}

type analyzeRequest struct {
	JobID           uuid.UUID `json:"job_id"`
	ResumeText      string    `json:"resume_text"`
	ExperienceYears *int      `json:"experience_years"`
	EducationLevel  string    `json:"education_level"`
}

type previewRequest struct {
	JobID           uuid.UUID `json:"job_id"`
	CandidateSkills []string  `json:"candidate_skills"`
}

func NewScreeningHandler(uc usecase.ScreeningUsecase, status usecase.StatusUsecase) *ScreeningHandler {
	return &ScreeningHandler{uc: uc, status: status}
}

func (h *ScreeningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/screenings")
	grp.Post("/", h.Analyze)
	grp.Post("/preview", h.Preview)
	grp.Get("/", h.History)
	grp.Get("/:screening_id", h.Get)
	grp.Post("/:screening_id/apply", h.Apply)
}

// Analyze screens a resume against a job and persists the result with
// status Pending.
func (h *ScreeningHandler) Analyze(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec, res, err := h.uc.Analyze(c.Context(), usecase.AnalyzeInput{
		CandidateID:     candidateID,
		JobID:           req.JobID,
		ResumeText:      req.ResumeText,
		ExperienceYears: req.ExperienceYears,
		EducationLevel:  req.EducationLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := screeningResponse(rec)
	out.Recommendations = res.Recommendations
	return response.Success(c, fiber.StatusOK, "Resume analyzed successfully", out)
}

// Preview scores an explicit skill list without persisting anything.
func (h *ScreeningHandler) Preview(c fiber.Ctx) error {
	if _, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req previewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.AnalyzeOnly(c.Context(), req.CandidateSkills, req.JobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AnalyzeOnlyResponse{
		MatchedSkills:   res.MatchedSkills,
		MissingSkills:   res.MissingSkills,
		Score:           res.Score,
		Breakdown:       dto.BreakdownResponse(res.Breakdown),
		Recommendations: res.Recommendations,
	})
}

func (h *ScreeningHandler) Get(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	screeningID, err := uuid.Parse(c.Params("screening_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec, err := h.uc.Get(c.Context(), candidateID, screeningID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, screeningResponse(rec))
}

func (h *ScreeningHandler) History(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.History(c.Context(), candidateID, c.Query("status"))
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ScreeningResultResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, screeningResponse(rec))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// Apply submits a pending screening as a formal application.
func (h *ScreeningHandler) Apply(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	screeningID, err := uuid.Parse(c.Params("screening_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	role, _ := c.Locals(middleware.CtxRoleKey).(string)
	out, err := h.status.Transition(c.Context(), usecase.TransitionInput{
		ActorID:   candidateID,
		ActorRole: role,
		Screening: screeningID,
		NewStatus: string(screening.StatusApplied),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	data := screeningResponse(out.Record)
	if out.Warning != "" {
		return response.SuccessWithWarning(c, fiber.StatusOK, "Applied successfully", out.Warning, data)
	}
	return response.Success(c, fiber.StatusOK, "Applied successfully", data)
}

func screeningResponse(rec repository.ScreeningResult) dto.ScreeningResultResponse {
	return dto.ScreeningResultResponse{
		ID:            rec.ID,
		JobID:         rec.JobID,
		MatchedSkills: rec.MatchedSkills,
		MissingSkills: rec.MissingSkills,
		Score:         rec.Score,
		Breakdown: dto.BreakdownResponse{
			Skills:     rec.SkillsScore,
			Experience: rec.ExperienceScore,
			Education:  rec.EducationScore,
		},
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

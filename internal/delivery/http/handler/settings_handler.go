package handler

import (
	"resume-screen/internal/delivery/http/dto"
	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/pkg/response"
	"resume-screen/internal/screening"
	"resume-screen/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// SettingsHandler exposes the admin configuration surface: scoring
// weights, minimum shortlist score and the skill taxonomy.
type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

type updateWeightsRequest struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
}

type updateMinShortlistRequest struct {
	MinShortlistScore int `json:"min_shortlist_score"`
}

type replaceTaxonomyRequest struct {
	Taxonomy map[string][]string `json:"skill_synonyms"`
}

func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/settings")
	grp.Get("/", h.Get)
	grp.Put("/weights", h.UpdateWeights)
	grp.Put("/min-shortlist-score", h.UpdateMinShortlistScore)
	grp.Put("/taxonomy", h.ReplaceTaxonomy)
}

func (h *SettingsHandler) Get(c fiber.Ctx) error {
	s, err := h.uc.Current(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SettingsResponse{
		Weights: dto.WeightsResponse{
			Skills:     s.SkillsWeight,
			Experience: s.ExperienceWeight,
			Education:  s.EducationWeight,
		},
		MinShortlistScore: s.MinShortlistScore,
		Taxonomy:          h.uc.Taxonomy().Entries(),
	})
}

func (h *SettingsHandler) UpdateWeights(c fiber.Ctx) error {
	var req updateWeightsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.UpdateWeights(c.Context(), screening.Weights{
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Scoring weights updated", nil)
}

func (h *SettingsHandler) UpdateMinShortlistScore(c fiber.Ctx) error {
	var req updateMinShortlistRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateMinShortlistScore(c.Context(), req.MinShortlistScore); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Minimum shortlist score updated", nil)
}

func (h *SettingsHandler) ReplaceTaxonomy(c fiber.Ctx) error {
	var req replaceTaxonomyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.ReplaceTaxonomy(c.Context(), req.Taxonomy); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Taxonomy replaced", nil)
}

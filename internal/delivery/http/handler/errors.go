package handler

import (
	"errors"

	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/pkg/response"
	"resume-screen/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates the shared usecase sentinels into HTTP
// outcomes. Handlers with package-specific sentinels map those first
// and fall back here.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidWeights):
		return middleware.NewAppError(fiber.StatusBadRequest, "Scoring weights must be non-negative and sum to 100", nil, err)
	case errors.Is(err, usecase.ErrInvalidTaxonomy):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid taxonomy", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid status transition", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrScreeningNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Screening record not found", nil, err)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package usecase

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInternal             = errors.New("internal error")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrJobNotFound          = errors.New("job not found")
	ErrScreeningNotFound    = errors.New("screening record not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidWeights       = errors.New("invalid scoring weights")
	ErrInvalidTaxonomy      = errors.New("invalid taxonomy")
)

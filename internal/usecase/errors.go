package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidMetric         = errors.New("invalid metric")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

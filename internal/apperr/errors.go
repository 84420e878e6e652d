package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation (HTTP 400).
var ErrInvalid = errors.New("invalid request")

// ErrNotFound indicates that the requested resource does not exist (HTTP 404).
var ErrNotFound = errors.New("not found")

// ErrUnavailable indicates that an external collaborator could not be reached in time (HTTP 503).
var ErrUnavailable = errors.New("service unavailable")

package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrValidation            = errors.New("validation failed")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDestinationNotFound   = errors.New("destination not found")
	ErrPreferenceIncomplete  = errors.New("route preference is missing urgency or importance")
	ErrObjectStorageDisabled = errors.New("object storage not configured")
	ErrImageRequired         = errors.New("image file required")
)

// ValidationError carries the per-field messages a form shows next to its
// inputs. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e.Message + ": " + strings.Join(keys, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func newValidationError(message string, fields map[string]string) error {
	return &ValidationError{Message: message, Fields: fields}
}

func isNotFound(err error) bool {
	return errors.Is(err, ports.ErrNotFound)
}

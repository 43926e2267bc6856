package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/study-tracker/internal/api/shared"
	"github.com/phrazzld/study-tracker/internal/domain"
	"github.com/phrazzld/study-tracker/internal/study"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// The client deleted against a list that has since changed
	case errors.Is(err, study.ErrPositionOutOfRange):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, domain.ErrEmptyTitle):
		return "Title cannot be empty"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid item ID"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.Is(err, study.ErrPositionOutOfRange):
		return "The list has changed, reload and try again"
	case errors.Is(err, study.ErrIOFailure):
		return "Failed to export study list"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError reports the first failing field without exposing
// struct names or values.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "gte":
		return "must not be negative"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message matching err, logging
// the full (redacted) error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

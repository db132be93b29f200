// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to StatusOf for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/inventory-service/pkg/httpx"
	"github.com/ghuser/inventory-service/pkg/logger"
	"github.com/ghuser/inventory-service/pkg/validator"
	"github.com/ghuser/inventory-service/services/inventory/domain"
)

// Writer renders domain errors as JSON responses. Server errors are logged,
// reported to the request's Sentry hub and, in production, replaced with the
// generic status text.
type Writer struct {
	Log        logger.Logger
	Production bool
}

// NewWriter returns a Writer that logs through log.
func NewWriter(log logger.Logger, production bool) *Writer {
	return &Writer{Log: log, Production: production}
}

// Write maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() and errors.As() so wrapped errors are matched correctly.
func (ew *Writer) Write(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		validator.WriteValidationFailed(w, fieldErrors(ve))
		return
	}

	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		ew.report(r, err, status)
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status, ew.Production))
}

func (ew *Writer) report(r *http.Request, err error, status int) {
	if ew.Log != nil {
		ew.Log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
	}
}

// StatusOf returns the HTTP status for err. Unrecognized errors map to 500.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest // 400
	case errors.Is(err, domain.ErrInvalidItem):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, domain.ErrStorage):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}

func fieldErrors(ve *domain.ValidationError) []validator.FieldError {
	out := make([]validator.FieldError, len(ve.Violations))
	for i, v := range ve.Violations {
		out[i] = validator.FieldError{
			Field:      v.Field,
			Constraint: v.Constraint,
			Value:      v.Value,
			Message:    v.Message,
		}
	}
	return out
}

package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/bonuses-backend/internal/errs"
	"github.com/GregMSThompson/bonuses-backend/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		// Use context logger if encoding fails
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

// HandleError logs err once and maps it to a response. Every bonus source
// failure is a 500 carrying the error text; callers do not branch on kind.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var (
		notConfigured *errs.NotConfiguredError
		missing       *errs.MissingConfigurationError
		notFound      *errs.CredentialsNotFoundError
		parseErr      *errs.CredentialsParseError
		fetchErr      *errs.FetchFailedError
	)

	switch {
	case errors.As(err, &notConfigured):
		log.Error("bonus source not configured",
			"source", notConfigured.Source,
			"error", err)

	case errors.As(err, &missing):
		log.Error("missing configuration", "options", missing.Options)

	case errors.As(err, &notFound):
		log.Error("credentials not found", "path", notFound.Path, "error", err)

	case errors.As(err, &parseErr):
		log.Error("credentials could not be parsed", "error", err)

	case errors.As(err, &fetchErr):
		log.Error("bonus fetch failed",
			"source", fetchErr.Source,
			"error", err)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
		return
	}

	h.WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
}

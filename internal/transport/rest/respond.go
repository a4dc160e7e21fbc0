package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// messageResponse is the body of successful mutations.
type messageResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// NonFieldErrors keys messages that belong to no single field.
const NonFieldErrors = "__all__"

// msgVersionConflict answers an upload that lost every version race.
const msgVersionConflict = "Another upload claimed this version. Please upload again."

// errorsResponse is every error body: messages grouped by field.
type errorsResponse struct {
	Errors map[string][]string `json:"errors"`
}

// listResponse wraps every list and search result.
type listResponse[T any] struct {
	Results []T `json:"results"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Results: items}
}

// respondError maps service errors to HTTP responses. Anything unexpected is
// logged and reported as a 500 without details.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: verr.Fields()})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeFieldError(w, http.StatusConflict, "document", msgVersionConflict)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeFieldError(w, status, NonFieldErrors, message)
}

func writeFieldError(w http.ResponseWriter, status int, field, message string) {
	writeJSON(w, status, errorsResponse{Errors: map[string][]string{field: {message}}})
}

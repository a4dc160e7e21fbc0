package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/entry"
)

type entryService interface {
	Record(ctx context.Context, input entry.DigitalEntryInput) (domain.ActivityLog, error)
}

// EntryHandler serves digital register entries.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entry")}
}

// Record handles POST /digital-entry.
func (h *EntryHandler) Record(w http.ResponseWriter, r *http.Request) {
	var input entry.DigitalEntryInput
	if err := decodePayload(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.svc.Record(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{ID: log.ID.String(), Message: "Digital entry recorded"})
}

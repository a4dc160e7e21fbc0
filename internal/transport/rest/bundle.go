package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/schedule"
)

type scheduleService interface {
	CreateEntry(ctx context.Context, input schedule.CreateEntryInput) (domain.ScheduleEntry, error)
	ListEntries(ctx context.Context, input schedule.ListEntriesInput) ([]domain.ScheduleEntry, error)
	MarkComplete(ctx context.Context, input schedule.MarkCompleteInput) (domain.ScheduleEntry, error)
}

// BundleHandler serves the schedule entry endpoints.
type BundleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewBundleHandler creates a BundleHandler.
func NewBundleHandler(svc scheduleService, logger *slog.Logger) *BundleHandler {
	return &BundleHandler{svc: svc, log: logger.With("handler", "bundle")}
}

type bundleResponse struct {
	ID           string `json:"id"`
	Register     string `json:"register"`
	BundleType   string `json:"bundle_type"`
	ScheduledFor string `json:"scheduled_for"`
	Completed    bool   `json:"completed"`
}

type completionResponse struct {
	ID          string     `json:"id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Create handles POST /bundles.
func (h *BundleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input schedule.CreateEntryInput
	if err := decodePayload(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{ID: entry.ID.String(), Message: "Schedule entry created"})
}

// List handles GET /bundles?bundle_type=&register=.
func (h *BundleHandler) List(w http.ResponseWriter, r *http.Request) {
	var input schedule.ListEntriesInput
	if err := decodeValues(r.URL.Query(), &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid query")
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]bundleResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, bundleResponse{
			ID:           e.ID.String(),
			Register:     e.RegisterName,
			BundleType:   e.BundleType.String(),
			ScheduledFor: e.ScheduledFor.Format(domain.DateLayout),
			Completed:    e.Completed,
		})
	}
	writeJSON(w, http.StatusOK, newList(out))
}

// Complete handles POST /bundles/{id}/complete.
func (h *BundleHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.MarkComplete(r.Context(), schedule.MarkCompleteInput{EntryID: id})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, completionResponse{
		ID:          entry.ID.String(),
		Completed:   entry.Completed,
		CompletedAt: entry.CompletedAt,
	})
}

// pathID parses the {id} path segment, answering 404 when it is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

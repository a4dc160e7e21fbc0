package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/register"
)

type registerService interface {
	CreateRegister(ctx context.Context, input register.CreateRegisterInput) (domain.Register, error)
	Search(ctx context.Context, input register.SearchInput) ([]domain.RegisterSearchResult, error)
	RenderPDF(ctx context.Context, registerID uuid.UUID) ([]byte, error)
	Activity(ctx context.Context, registerID uuid.UUID) ([]domain.ActivityLog, error)
}

// RegisterHandler serves registers: creation, search, reports and activity.
type RegisterHandler struct {
	svc registerService
	loc *time.Location
	log *slog.Logger
}

// NewRegisterHandler creates a RegisterHandler. loc is the zone activity
// summaries are rendered in.
func NewRegisterHandler(svc registerService, loc *time.Location, logger *slog.Logger) *RegisterHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RegisterHandler{svc: svc, loc: loc, log: logger.With("handler", "register")}
}

type searchResultResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	BundleCounts map[string]int `json:"bundle_counts"`
}

type activityResponse struct {
	ID            string     `json:"id"`
	Action        string     `json:"action"`
	Details       string     `json:"details"`
	User          *uuid.UUID `json:"user"`
	ScheduleEntry *uuid.UUID `json:"schedule_entry"`
	CreatedAt     time.Time  `json:"created_at"`
	Summary       string     `json:"summary"`
}

// Create handles POST /registers.
func (h *RegisterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input register.CreateRegisterInput
	if err := decodePayload(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reg, err := h.svc.CreateRegister(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{ID: reg.ID.String(), Message: "Register created"})
}

// Search handles GET /search?query=&bundle_type=&completed=.
func (h *RegisterHandler) Search(w http.ResponseWriter, r *http.Request) {
	var input register.SearchInput
	if err := decodeValues(r.URL.Query(), &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid query")
		return
	}

	results, err := h.svc.Search(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]searchResultResponse, 0, len(results))
	for _, res := range results {
		counts := make(map[string]int, len(domain.BundleTypes))
		for _, bt := range domain.BundleTypes {
			counts[bt.String()] = res.BundleCounts[bt]
		}
		out = append(out, searchResultResponse{
			ID:           res.ID.String(),
			Name:         res.Name,
			Description:  res.Description,
			BundleCounts: counts,
		})
	}
	writeJSON(w, http.StatusOK, newList(out))
}

// PDF handles GET /registers/{id}/pdf.
func (h *RegisterHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	pdf, err := h.svc.RenderPDF(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=register-%s.pdf", id))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf) //nolint:errcheck
}

// Activity handles GET /registers/{id}/activity.
func (h *RegisterHandler) Activity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	logs, err := h.svc.Activity(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]activityResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, activityResponse{
			ID:            l.ID.String(),
			Action:        l.Action.String(),
			Details:       l.Details,
			User:          l.UserID,
			ScheduleEntry: l.ScheduleEntryID,
			CreatedAt:     l.CreatedAt,
			Summary:       l.Describe(h.loc),
		})
	}
	writeJSON(w, http.StatusOK, newList(out))
}

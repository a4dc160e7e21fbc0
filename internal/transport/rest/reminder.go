package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

type reminderService interface {
	Pending(ctx context.Context) ([]domain.Reminder, error)
	MarkSent(ctx context.Context, id uuid.UUID) (domain.Reminder, error)
}

// ReminderHandler serves pending reminders.
type ReminderHandler struct {
	svc reminderService
	log *slog.Logger
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: logger.With("handler", "reminder")}
}

type reminderResponse struct {
	ID       string    `json:"id"`
	Register string    `json:"register"`
	RemindAt time.Time `json:"remind_at"`
	Message  string    `json:"message"`
}

type sentResponse struct {
	ID     string `json:"id"`
	IsSent bool   `json:"is_sent"`
}

// Pending handles GET /reminders.
func (h *ReminderHandler) Pending(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.svc.Pending(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]reminderResponse, 0, len(reminders))
	for _, rem := range reminders {
		out = append(out, reminderResponse{
			ID:       rem.ID.String(),
			Register: rem.RegisterName,
			RemindAt: rem.RemindAt,
			Message:  rem.Message,
		})
	}
	writeJSON(w, http.StatusOK, newList(out))
}

// MarkSent handles POST /reminders/{id}/sent.
func (h *ReminderHandler) MarkSent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rem, err := h.svc.MarkSent(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sentResponse{ID: rem.ID.String(), IsSent: rem.IsSent})
}

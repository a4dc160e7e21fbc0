package rest

import "net/http"

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Bundles   *BundleHandler
	Entries   *EntryHandler
	Documents *DocumentHandler
	Registers *RegisterHandler
	Reminders *ReminderHandler
}

// NewRouter mounts every endpoint on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /bundles", h.Bundles.Create)
	mux.HandleFunc("GET /bundles", h.Bundles.List)
	mux.HandleFunc("POST /bundles/{id}/complete", h.Bundles.Complete)

	mux.HandleFunc("POST /digital-entry", h.Entries.Record)

	mux.HandleFunc("POST /documents", h.Documents.Create)
	mux.HandleFunc("POST /documents/upload", h.Documents.Upload)

	mux.HandleFunc("POST /registers", h.Registers.Create)
	mux.HandleFunc("GET /registers/{id}/pdf", h.Registers.PDF)
	mux.HandleFunc("GET /registers/{id}/activity", h.Registers.Activity)
	mux.HandleFunc("GET /search", h.Registers.Search)

	mux.HandleFunc("GET /reminders", h.Reminders.Pending)
	mux.HandleFunc("POST /reminders/{id}/sent", h.Reminders.MarkSent)

	return mux
}

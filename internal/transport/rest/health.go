package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, now: time.Now}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
	Database  string    `json:"database,omitempty"`
}

// Health always answers 200 with the server time. The database field is
// informational only.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := h.probe(r.Context())
	resp.Status = "ok"
	writeJSON(w, http.StatusOK, resp)
}

// Live answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: h.now().UTC()})
}

// Ready answers 503 until the database responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := h.probe(r.Context())
	if resp.Database != "ok" {
		resp.Status = "unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.Status = "ok"
	writeJSON(w, http.StatusOK, resp)
}

func (h *HealthHandler) probe(ctx context.Context) healthResponse {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	db := "ok"
	if err := h.db.Ping(ctx); err != nil {
		db = "down"
	}
	return healthResponse{
		Timestamp: h.now().UTC(),
		Version:   h.version,
		Database:  db,
	}
}

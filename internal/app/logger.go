package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/adminos-backend/internal/config"
)

// NewLogger builds the process logger. Format "json" is for production,
// anything else gives text with source locations. Unknown levels fall back
// to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, AddSource: true})
	}
	return slog.New(h).With(slog.String("app", "registers"))
}

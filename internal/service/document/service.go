// Package document manages document containers and their versioned uploads.
package document

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
	"github.com/heartmarshall/adminos-backend/internal/storage"
)

// MaxVersionAttempts bounds how often an upload retries a lost version race.
const MaxVersionAttempts = 5

type documentRepo interface {
	Create(ctx context.Context, d domain.Document) (domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error)
	CreateVersion(ctx context.Context, v domain.DocumentVersion) (domain.DocumentVersion, error)
}

type registerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Register, error)
}

type fileStore interface {
	Save(filename string, r io.Reader, now time.Time) (storage.Stored, error)
	Remove(rel string) error
}

type auditRecorder interface {
	Record(ctx context.Context, e audit.Entry) (domain.ActivityLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages documents and document versions.
type Service struct {
	documents documentRepo
	registers registerRepo
	files     fileStore
	audit     auditRecorder
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new document Service.
func NewService(
	log *slog.Logger,
	documents documentRepo,
	registers registerRepo,
	files fileStore,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		documents: documents,
		registers: registers,
		files:     files,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "document"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

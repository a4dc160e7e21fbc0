package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
	"github.com/heartmarshall/adminos-backend/pkg/ctxutil"
)

// UploadVersion stores the file and adds it as the next version of the
// document. Each attempt runs in its own transaction; a lost race for the
// version number is retried up to MaxVersionAttempts times before
// domain.ErrConflict is returned. The stored file is removed when nothing
// was committed.
func (s *Service) UploadVersion(ctx context.Context, input UploadVersionInput) (domain.DocumentVersion, error) {
	u, err := input.parse()
	if err != nil {
		return domain.DocumentVersion{}, err
	}

	now := s.now()
	stored, err := s.files.Save(input.Filename, input.File, now)
	if err != nil {
		return domain.DocumentVersion{}, fmt.Errorf("store upload: %w", err)
	}

	v := domain.DocumentVersion{
		DocumentID:  u.documentID,
		FilePath:    stored.Path,
		ContentType: stored.ContentType,
		SizeBytes:   stored.Size,
		UploadedBy:  ctxutil.ActingUserFromCtx(ctx),
		Notes:       u.notes,
	}
	v.Touch(now)

	var created domain.DocumentVersion
	for attempt := 1; ; attempt++ {
		v.ID = uuid.New()
		created, err = s.createVersion(ctx, v)
		if !errors.Is(err, domain.ErrConflict) || attempt == MaxVersionAttempts {
			break
		}
		s.log.DebugContext(ctx, "version race lost, retrying",
			slog.String("document_id", v.DocumentID.String()),
			slog.Int("attempt", attempt),
		)
	}
	if err != nil {
		if rmErr := s.files.Remove(stored.Path); rmErr != nil {
			s.log.WarnContext(ctx, "remove orphaned upload",
				slog.String("path", stored.Path),
				slog.String("error", rmErr.Error()),
			)
		}
		return domain.DocumentVersion{}, err
	}

	s.log.InfoContext(ctx, "document version uploaded",
		slog.String("version_id", created.ID.String()),
		slog.String("document_id", created.DocumentID.String()),
		slog.Int("version", created.Version),
		slog.String("path", created.FilePath),
	)

	return created, nil
}

func (s *Service) createVersion(ctx context.Context, v domain.DocumentVersion) (domain.DocumentVersion, error) {
	var created domain.DocumentVersion
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		doc, getErr := s.documents.GetByID(txCtx, v.DocumentID)
		if errors.Is(getErr, domain.ErrNotFound) {
			return domain.NewValidationError("document", domain.MsgInvalidChoice)
		}
		if getErr != nil {
			return fmt.Errorf("get document: %w", getErr)
		}

		var createErr error
		created, createErr = s.documents.CreateVersion(txCtx, v)
		if createErr != nil {
			return fmt.Errorf("create version: %w", createErr)
		}
		created.DocumentTitle = doc.Title
		created.RegisterID = doc.RegisterID

		_, auditErr := s.audit.Record(txCtx, audit.Entry{
			RegisterID: doc.RegisterID,
			Action:     domain.ActivityDocumentUploaded,
			Details:    fmt.Sprintf("Uploaded version %d of %s", created.Version, doc.Title),
			UserID:     v.UploadedBy,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	return created, err
}

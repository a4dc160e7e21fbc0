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

// CreateDocument stores a document container and records the "created"
// activity in one transaction. A duplicate title within the register is a
// validation error on "title".
func (s *Service) CreateDocument(ctx context.Context, input CreateDocumentInput) (domain.Document, error) {
	doc, err := input.Validate()
	if err != nil {
		return domain.Document{}, err
	}

	doc.ID = uuid.New()
	doc.Touch(s.now())

	var created domain.Document
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, getErr := s.registers.GetByID(txCtx, doc.RegisterID)
		if errors.Is(getErr, domain.ErrNotFound) {
			return domain.NewValidationError("register", domain.MsgInvalidChoice)
		}
		if getErr != nil {
			return fmt.Errorf("get register: %w", getErr)
		}

		var createErr error
		created, createErr = s.documents.Create(txCtx, doc)
		switch {
		case errors.Is(createErr, domain.ErrAlreadyExists):
			return domain.NewValidationError("title", msgDuplicateTitle)
		case createErr != nil:
			return fmt.Errorf("create document: %w", createErr)
		}

		_, auditErr := s.audit.Record(txCtx, audit.Entry{
			RegisterID: created.RegisterID,
			Action:     domain.ActivityCreated,
			Details:    "Document container created for " + created.Title,
			UserID:     ctxutil.ActingUserFromCtx(txCtx),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Document{}, err
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("document_id", created.ID.String()),
		slog.String("register_id", created.RegisterID.String()),
	)

	return created, nil
}

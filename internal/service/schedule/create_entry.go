package schedule

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

// CreateEntry validates the payload, stores the entry and records the
// "created" activity in one transaction.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (domain.ScheduleEntry, error) {
	entry, err := input.Validate()
	if err != nil {
		return domain.ScheduleEntry{}, err
	}

	now := s.now()
	entry.ID = uuid.New()
	entry.Touch(now)

	var created domain.ScheduleEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, getErr := s.registers.GetByID(txCtx, entry.RegisterID)
		if errors.Is(getErr, domain.ErrNotFound) {
			return domain.NewValidationError("register", domain.MsgInvalidChoice)
		}
		if getErr != nil {
			return fmt.Errorf("get register: %w", getErr)
		}

		var createErr error
		created, createErr = s.entries.Create(txCtx, entry)
		if createErr != nil {
			return fmt.Errorf("create schedule entry: %w", createErr)
		}
		created.RegisterName = reg.Name

		_, auditErr := s.audit.Record(txCtx, audit.Entry{
			RegisterID:      created.RegisterID,
			Action:          domain.ActivityCreated,
			Details:         fmt.Sprintf("%s bundle scheduled for %s", created.BundleType.Display(), created.ScheduledFor.Format(domain.DateLayout)),
			UserID:          ctxutil.ActingUserFromCtx(txCtx),
			ScheduleEntryID: &created.ID,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.ScheduleEntry{}, err
	}

	s.log.InfoContext(ctx, "schedule entry created",
		slog.String("entry_id", created.ID.String()),
		slog.String("register_id", created.RegisterID.String()),
		slog.String("bundle_type", string(created.BundleType)),
	)

	return created, nil
}

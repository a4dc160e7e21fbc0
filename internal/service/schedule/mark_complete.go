package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
	"github.com/heartmarshall/adminos-backend/pkg/ctxutil"
)

// MarkComplete flags an entry as done. Repeated calls keep the first
// completed_at and record the "updated" activity only once.
func (s *Service) MarkComplete(ctx context.Context, input MarkCompleteInput) (domain.ScheduleEntry, error) {
	if err := input.Validate(); err != nil {
		return domain.ScheduleEntry{}, err
	}

	var (
		entry domain.ScheduleEntry
		first bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		entry, getErr = s.entries.GetByIDForUpdate(txCtx, input.EntryID)
		if getErr != nil {
			return fmt.Errorf("get schedule entry: %w", getErr)
		}

		first = entry.MarkComplete(s.now())
		if !first {
			return nil
		}

		if err := s.entries.UpdateCompletion(txCtx, entry); err != nil {
			return fmt.Errorf("update schedule entry: %w", err)
		}

		_, auditErr := s.audit.Record(txCtx, audit.Entry{
			RegisterID:      entry.RegisterID,
			Action:          domain.ActivityUpdated,
			Details:         fmt.Sprintf("Marked %s bundle for %s complete", entry.BundleType.Display(), entry.ScheduledFor.Format(domain.DateLayout)),
			UserID:          ctxutil.ActingUserFromCtx(txCtx),
			ScheduleEntryID: &entry.ID,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.ScheduleEntry{}, err
	}

	if first {
		s.log.InfoContext(ctx, "schedule entry completed",
			slog.String("entry_id", entry.ID.String()),
			slog.String("register_id", entry.RegisterID.String()),
		)
	}
	return entry, nil
}

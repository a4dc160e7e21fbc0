package schedule

import (
	"context"
	"fmt"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// ListEntries returns up to 50 entries, most recently scheduled first.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.ScheduleEntry, error) {
	filter, err := input.Validate()
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	return entries, nil
}

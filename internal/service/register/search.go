package register

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// Search returns up to 50 registers matching every present filter, ordered
// by name. Bundle counts cover all of a register's entries regardless of
// the filters.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.RegisterSearchResult, error) {
	filter, err := input.Validate()
	if err != nil {
		return nil, err
	}

	regs, err := s.registers.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search registers: %w", err)
	}

	ids := make([]uuid.UUID, len(regs))
	for i, r := range regs {
		ids[i] = r.ID
	}
	counts, err := s.registers.BundleCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("bundle counts: %w", err)
	}

	results := make([]domain.RegisterSearchResult, len(regs))
	for i, r := range regs {
		results[i] = domain.RegisterSearchResult{Register: r, BundleCounts: counts[r.ID]}
	}
	return results, nil
}

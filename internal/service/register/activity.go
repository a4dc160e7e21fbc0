package register

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// Activity returns the register's newest activity rows, at most 50.
func (s *Service) Activity(ctx context.Context, registerID uuid.UUID) ([]domain.ActivityLog, error) {
	if _, err := s.registers.GetByID(ctx, registerID); err != nil {
		return nil, err
	}

	logs, err := s.activity.ListByRegister(ctx, registerID, domain.MaxListResults)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return logs, nil
}

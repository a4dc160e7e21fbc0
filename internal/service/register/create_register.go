package register

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
	"github.com/heartmarshall/adminos-backend/pkg/ctxutil"
)

// CreateRegister stores a register and records the "created" activity in one transaction.
func (s *Service) CreateRegister(ctx context.Context, input CreateRegisterInput) (domain.Register, error) {
	reg, err := input.Validate()
	if err != nil {
		return domain.Register{}, err
	}

	reg.ID = uuid.New()
	reg.Touch(s.now())

	var created domain.Register
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.registers.Create(txCtx, reg)
		if createErr != nil {
			return fmt.Errorf("create register: %w", createErr)
		}

		_, auditErr := s.audit.Record(txCtx, audit.Entry{
			RegisterID: created.ID,
			Action:     domain.ActivityCreated,
			Details:    "Register created",
			UserID:     ctxutil.ActingUserFromCtx(txCtx),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Register{}, err
	}

	s.log.InfoContext(ctx, "register created",
		slog.String("register_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

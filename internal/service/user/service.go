// Package user handles records that point at users of the external identity
// provider.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type activityRepo interface {
	ClearUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type versionRepo interface {
	ClearUploader(ctx context.Context, userID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages user references.
type Service struct {
	activity activityRepo
	versions versionRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new user Service.
func NewService(log *slog.Logger, activity activityRepo, versions versionRepo, tx txManager) *Service {
	return &Service{
		activity: activity,
		versions: versions,
		tx:       tx,
		log:      log.With("service", "user"),
	}
}

// ForgetResult counts the rows detached from a removed user.
type ForgetResult struct {
	ActivityLogs     int64
	DocumentVersions int64
}

// ForgetUser nulls every reference to userID in one transaction. Activity
// rows and uploaded versions stay, attributed to nobody.
func (s *Service) ForgetUser(ctx context.Context, userID uuid.UUID) (ForgetResult, error) {
	if userID == uuid.Nil {
		return ForgetResult{}, fmt.Errorf("forget user: nil id")
	}

	var res ForgetResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if res.ActivityLogs, err = s.activity.ClearUser(ctx, userID); err != nil {
			return fmt.Errorf("clear activity user: %w", err)
		}
		if res.DocumentVersions, err = s.versions.ClearUploader(ctx, userID); err != nil {
			return fmt.Errorf("clear uploader: %w", err)
		}
		return nil
	})
	if err != nil {
		return ForgetResult{}, err
	}

	s.log.InfoContext(ctx, "user forgotten",
		slog.String("user_id", userID.String()),
		slog.Int64("activity_logs", res.ActivityLogs),
		slog.Int64("document_versions", res.DocumentVersions),
	)
	return res, nil
}

package audit

import (
	"context"
	"sync"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc func(ctx context.Context, l domain.ActivityLog) (domain.ActivityLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.ActivityLog
		}
	}
	lockCreate sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, l domain.ActivityLog) (domain.ActivityLog, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.ActivityLog
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.ActivityLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ClearUserFunc func(ctx context.Context, userID uuid.UUID) (int64, error)

	calls struct {
		ClearUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockClearUser sync.RWMutex
}

func (mock *activityRepoMock) ClearUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.ClearUserFunc == nil {
		panic("activityRepoMock.ClearUserFunc: method is nil but activityRepo.ClearUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockClearUser.Lock()
	mock.calls.ClearUser = append(mock.calls.ClearUser, callInfo)
	mock.lockClearUser.Unlock()
	return mock.ClearUserFunc(ctx, userID)
}

func (mock *activityRepoMock) ClearUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockClearUser.RLock()
	calls = mock.calls.ClearUser
	mock.lockClearUser.RUnlock()
	return calls
}

var _ versionRepo = &versionRepoMock{}

type versionRepoMock struct {
	ClearUploaderFunc func(ctx context.Context, userID uuid.UUID) (int64, error)

	calls struct {
		ClearUploader []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockClearUploader sync.RWMutex
}

func (mock *versionRepoMock) ClearUploader(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.ClearUploaderFunc == nil {
		panic("versionRepoMock.ClearUploaderFunc: method is nil but versionRepo.ClearUploader was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockClearUploader.Lock()
	mock.calls.ClearUploader = append(mock.calls.ClearUploader, callInfo)
	mock.lockClearUploader.Unlock()
	return mock.ClearUploaderFunc(ctx, userID)
}

func (mock *versionRepoMock) ClearUploaderCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockClearUploader.RLock()
	calls = mock.calls.ClearUploader
	mock.lockClearUploader.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

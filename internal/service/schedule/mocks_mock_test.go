package schedule

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc           func(ctx context.Context, e domain.ScheduleEntry) (domain.ScheduleEntry, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error)
	UpdateCompletionFunc func(ctx context.Context, e domain.ScheduleEntry) error
	ListFunc             func(ctx context.Context, f domain.ScheduleEntryFilter) ([]domain.ScheduleEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.ScheduleEntry
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdateCompletion []struct {
			Ctx context.Context
			E   domain.ScheduleEntry
		}
		List []struct {
			Ctx context.Context
			F   domain.ScheduleEntryFilter
		}
	}
	lockCreate           sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateCompletion sync.RWMutex
	lockList             sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e domain.ScheduleEntry) (domain.ScheduleEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ScheduleEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.ScheduleEntry
} {
	var calls []struct {
		Ctx context.Context
		E   domain.ScheduleEntry
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("entryRepoMock.GetByIDForUpdateFunc: method is nil but entryRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByIDForUpdate.RLock()
	calls = mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) UpdateCompletion(ctx context.Context, e domain.ScheduleEntry) error {
	if mock.UpdateCompletionFunc == nil {
		panic("entryRepoMock.UpdateCompletionFunc: method is nil but entryRepo.UpdateCompletion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ScheduleEntry
	}{Ctx: ctx, E: e}
	mock.lockUpdateCompletion.Lock()
	mock.calls.UpdateCompletion = append(mock.calls.UpdateCompletion, callInfo)
	mock.lockUpdateCompletion.Unlock()
	return mock.UpdateCompletionFunc(ctx, e)
}

func (mock *entryRepoMock) UpdateCompletionCalls() []struct {
	Ctx context.Context
	E   domain.ScheduleEntry
} {
	var calls []struct {
		Ctx context.Context
		E   domain.ScheduleEntry
	}
	mock.lockUpdateCompletion.RLock()
	calls = mock.calls.UpdateCompletion
	mock.lockUpdateCompletion.RUnlock()
	return calls
}

func (mock *entryRepoMock) List(ctx context.Context, f domain.ScheduleEntryFilter) ([]domain.ScheduleEntry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ScheduleEntryFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ScheduleEntryFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.ScheduleEntryFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ registerRepo = &registerRepoMock{}

type registerRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Register, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *registerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Register, error) {
	if mock.GetByIDFunc == nil {
		panic("registerRepoMock.GetByIDFunc: method is nil but registerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *registerRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc func(ctx context.Context, e audit.Entry) (domain.ActivityLog, error)

	calls struct {
		Record []struct {
			Ctx context.Context
			E   audit.Entry
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, e audit.Entry) (domain.ActivityLog, error) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   audit.Entry
	}{Ctx: ctx, E: e}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, e)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx context.Context
	E   audit.Entry
} {
	var calls []struct {
		Ctx context.Context
		E   audit.Entry
	}
	mock.lockRecord.RLock()
	calls = mock.calls.Record
	mock.lockRecord.RUnlock()
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

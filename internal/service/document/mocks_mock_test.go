package document

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
	"github.com/heartmarshall/adminos-backend/internal/storage"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	CreateFunc        func(ctx context.Context, d domain.Document) (domain.Document, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.Document, error)
	CreateVersionFunc func(ctx context.Context, v domain.DocumentVersion) (domain.DocumentVersion, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			D   domain.Document
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateVersion []struct {
			Ctx context.Context
			V   domain.DocumentVersion
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockCreateVersion sync.RWMutex
}

func (mock *documentRepoMock) Create(ctx context.Context, d domain.Document) (domain.Document, error) {
	if mock.CreateFunc == nil {
		panic("documentRepoMock.CreateFunc: method is nil but documentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Document
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *documentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.Document
} {
	var calls []struct {
		Ctx context.Context
		D   domain.Document
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *documentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error) {
	if mock.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
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

func (mock *documentRepoMock) GetByIDCalls() []struct {
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

func (mock *documentRepoMock) CreateVersion(ctx context.Context, v domain.DocumentVersion) (domain.DocumentVersion, error) {
	if mock.CreateVersionFunc == nil {
		panic("documentRepoMock.CreateVersionFunc: method is nil but documentRepo.CreateVersion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   domain.DocumentVersion
	}{Ctx: ctx, V: v}
	mock.lockCreateVersion.Lock()
	mock.calls.CreateVersion = append(mock.calls.CreateVersion, callInfo)
	mock.lockCreateVersion.Unlock()
	return mock.CreateVersionFunc(ctx, v)
}

func (mock *documentRepoMock) CreateVersionCalls() []struct {
	Ctx context.Context
	V   domain.DocumentVersion
} {
	var calls []struct {
		Ctx context.Context
		V   domain.DocumentVersion
	}
	mock.lockCreateVersion.RLock()
	calls = mock.calls.CreateVersion
	mock.lockCreateVersion.RUnlock()
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

var _ fileStore = &fileStoreMock{}

type fileStoreMock struct {
	SaveFunc   func(filename string, r io.Reader, now time.Time) (storage.Stored, error)
	RemoveFunc func(rel string) error

	calls struct {
		Save []struct {
			Filename string
			R        io.Reader
			Now      time.Time
		}
		Remove []struct {
			Rel string
		}
	}
	lockSave   sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *fileStoreMock) Save(filename string, r io.Reader, now time.Time) (storage.Stored, error) {
	if mock.SaveFunc == nil {
		panic("fileStoreMock.SaveFunc: method is nil but fileStore.Save was just called")
	}
	callInfo := struct {
		Filename string
		R        io.Reader
		Now      time.Time
	}{Filename: filename, R: r, Now: now}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(filename, r, now)
}

func (mock *fileStoreMock) SaveCalls() []struct {
	Filename string
	R        io.Reader
	Now      time.Time
} {
	var calls []struct {
		Filename string
		R        io.Reader
		Now      time.Time
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *fileStoreMock) Remove(rel string) error {
	if mock.RemoveFunc == nil {
		panic("fileStoreMock.RemoveFunc: method is nil but fileStore.Remove was just called")
	}
	callInfo := struct {
		Rel string
	}{Rel: rel}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(rel)
}

func (mock *fileStoreMock) RemoveCalls() []struct {
	Rel string
} {
	var calls []struct {
		Rel string
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
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

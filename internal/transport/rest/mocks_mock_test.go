package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/document"
	"github.com/heartmarshall/adminos-backend/internal/service/entry"
	"github.com/heartmarshall/adminos-backend/internal/service/register"
	"github.com/heartmarshall/adminos-backend/internal/service/schedule"
)

var _ scheduleService = &scheduleServiceMock{}

type scheduleServiceMock struct {
	CreateEntryFunc  func(ctx context.Context, input schedule.CreateEntryInput) (domain.ScheduleEntry, error)
	ListEntriesFunc  func(ctx context.Context, input schedule.ListEntriesInput) ([]domain.ScheduleEntry, error)
	MarkCompleteFunc func(ctx context.Context, input schedule.MarkCompleteInput) (domain.ScheduleEntry, error)

	calls struct {
		CreateEntry []struct {
			Ctx   context.Context
			Input schedule.CreateEntryInput
		}
		ListEntries []struct {
			Ctx   context.Context
			Input schedule.ListEntriesInput
		}
		MarkComplete []struct {
			Ctx   context.Context
			Input schedule.MarkCompleteInput
		}
	}
	lockCreateEntry  sync.RWMutex
	lockListEntries  sync.RWMutex
	lockMarkComplete sync.RWMutex
}

func (mock *scheduleServiceMock) CreateEntry(ctx context.Context, input schedule.CreateEntryInput) (domain.ScheduleEntry, error) {
	if mock.CreateEntryFunc == nil {
		panic("scheduleServiceMock.CreateEntryFunc: method is nil but scheduleService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input schedule.CreateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *scheduleServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input schedule.CreateEntryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input schedule.CreateEntryInput
	}
	mock.lockCreateEntry.RLock()
	calls = mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) ListEntries(ctx context.Context, input schedule.ListEntriesInput) ([]domain.ScheduleEntry, error) {
	if mock.ListEntriesFunc == nil {
		panic("scheduleServiceMock.ListEntriesFunc: method is nil but scheduleService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input schedule.ListEntriesInput
	}{Ctx: ctx, Input: input}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, input)
}

func (mock *scheduleServiceMock) ListEntriesCalls() []struct {
	Ctx   context.Context
	Input schedule.ListEntriesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input schedule.ListEntriesInput
	}
	mock.lockListEntries.RLock()
	calls = mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) MarkComplete(ctx context.Context, input schedule.MarkCompleteInput) (domain.ScheduleEntry, error) {
	if mock.MarkCompleteFunc == nil {
		panic("scheduleServiceMock.MarkCompleteFunc: method is nil but scheduleService.MarkComplete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input schedule.MarkCompleteInput
	}{Ctx: ctx, Input: input}
	mock.lockMarkComplete.Lock()
	mock.calls.MarkComplete = append(mock.calls.MarkComplete, callInfo)
	mock.lockMarkComplete.Unlock()
	return mock.MarkCompleteFunc(ctx, input)
}

func (mock *scheduleServiceMock) MarkCompleteCalls() []struct {
	Ctx   context.Context
	Input schedule.MarkCompleteInput
} {
	var calls []struct {
		Ctx   context.Context
		Input schedule.MarkCompleteInput
	}
	mock.lockMarkComplete.RLock()
	calls = mock.calls.MarkComplete
	mock.lockMarkComplete.RUnlock()
	return calls
}

var _ entryService = &entryServiceMock{}

type entryServiceMock struct {
	RecordFunc func(ctx context.Context, input entry.DigitalEntryInput) (domain.ActivityLog, error)

	calls struct {
		Record []struct {
			Ctx   context.Context
			Input entry.DigitalEntryInput
		}
	}
	lockRecord sync.RWMutex
}

func (mock *entryServiceMock) Record(ctx context.Context, input entry.DigitalEntryInput) (domain.ActivityLog, error) {
	if mock.RecordFunc == nil {
		panic("entryServiceMock.RecordFunc: method is nil but entryService.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input entry.DigitalEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, input)
}

func (mock *entryServiceMock) RecordCalls() []struct {
	Ctx   context.Context
	Input entry.DigitalEntryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input entry.DigitalEntryInput
	}
	mock.lockRecord.RLock()
	calls = mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

var _ documentService = &documentServiceMock{}

type documentServiceMock struct {
	CreateDocumentFunc func(ctx context.Context, input document.CreateDocumentInput) (domain.Document, error)
	UploadVersionFunc  func(ctx context.Context, input document.UploadVersionInput) (domain.DocumentVersion, error)

	calls struct {
		CreateDocument []struct {
			Ctx   context.Context
			Input document.CreateDocumentInput
		}
		UploadVersion []struct {
			Ctx   context.Context
			Input document.UploadVersionInput
		}
	}
	lockCreateDocument sync.RWMutex
	lockUploadVersion  sync.RWMutex
}

func (mock *documentServiceMock) CreateDocument(ctx context.Context, input document.CreateDocumentInput) (domain.Document, error) {
	if mock.CreateDocumentFunc == nil {
		panic("documentServiceMock.CreateDocumentFunc: method is nil but documentService.CreateDocument was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.CreateDocumentInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateDocument.Lock()
	mock.calls.CreateDocument = append(mock.calls.CreateDocument, callInfo)
	mock.lockCreateDocument.Unlock()
	return mock.CreateDocumentFunc(ctx, input)
}

func (mock *documentServiceMock) CreateDocumentCalls() []struct {
	Ctx   context.Context
	Input document.CreateDocumentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input document.CreateDocumentInput
	}
	mock.lockCreateDocument.RLock()
	calls = mock.calls.CreateDocument
	mock.lockCreateDocument.RUnlock()
	return calls
}

func (mock *documentServiceMock) UploadVersion(ctx context.Context, input document.UploadVersionInput) (domain.DocumentVersion, error) {
	if mock.UploadVersionFunc == nil {
		panic("documentServiceMock.UploadVersionFunc: method is nil but documentService.UploadVersion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.UploadVersionInput
	}{Ctx: ctx, Input: input}
	mock.lockUploadVersion.Lock()
	mock.calls.UploadVersion = append(mock.calls.UploadVersion, callInfo)
	mock.lockUploadVersion.Unlock()
	return mock.UploadVersionFunc(ctx, input)
}

func (mock *documentServiceMock) UploadVersionCalls() []struct {
	Ctx   context.Context
	Input document.UploadVersionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input document.UploadVersionInput
	}
	mock.lockUploadVersion.RLock()
	calls = mock.calls.UploadVersion
	mock.lockUploadVersion.RUnlock()
	return calls
}

var _ registerService = &registerServiceMock{}

type registerServiceMock struct {
	CreateRegisterFunc func(ctx context.Context, input register.CreateRegisterInput) (domain.Register, error)
	SearchFunc         func(ctx context.Context, input register.SearchInput) ([]domain.RegisterSearchResult, error)
	RenderPDFFunc      func(ctx context.Context, registerID uuid.UUID) ([]byte, error)
	ActivityFunc       func(ctx context.Context, registerID uuid.UUID) ([]domain.ActivityLog, error)

	calls struct {
		CreateRegister []struct {
			Ctx   context.Context
			Input register.CreateRegisterInput
		}
		Search []struct {
			Ctx   context.Context
			Input register.SearchInput
		}
		RenderPDF []struct {
			Ctx        context.Context
			RegisterID uuid.UUID
		}
		Activity []struct {
			Ctx        context.Context
			RegisterID uuid.UUID
		}
	}
	lockCreateRegister sync.RWMutex
	lockSearch         sync.RWMutex
	lockRenderPDF      sync.RWMutex
	lockActivity       sync.RWMutex
}

func (mock *registerServiceMock) CreateRegister(ctx context.Context, input register.CreateRegisterInput) (domain.Register, error) {
	if mock.CreateRegisterFunc == nil {
		panic("registerServiceMock.CreateRegisterFunc: method is nil but registerService.CreateRegister was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input register.CreateRegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateRegister.Lock()
	mock.calls.CreateRegister = append(mock.calls.CreateRegister, callInfo)
	mock.lockCreateRegister.Unlock()
	return mock.CreateRegisterFunc(ctx, input)
}

func (mock *registerServiceMock) CreateRegisterCalls() []struct {
	Ctx   context.Context
	Input register.CreateRegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input register.CreateRegisterInput
	}
	mock.lockCreateRegister.RLock()
	calls = mock.calls.CreateRegister
	mock.lockCreateRegister.RUnlock()
	return calls
}

func (mock *registerServiceMock) Search(ctx context.Context, input register.SearchInput) ([]domain.RegisterSearchResult, error) {
	if mock.SearchFunc == nil {
		panic("registerServiceMock.SearchFunc: method is nil but registerService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input register.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *registerServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input register.SearchInput
} {
	var calls []struct {
		Ctx   context.Context
		Input register.SearchInput
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *registerServiceMock) RenderPDF(ctx context.Context, registerID uuid.UUID) ([]byte, error) {
	if mock.RenderPDFFunc == nil {
		panic("registerServiceMock.RenderPDFFunc: method is nil but registerService.RenderPDF was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		RegisterID uuid.UUID
	}{Ctx: ctx, RegisterID: registerID}
	mock.lockRenderPDF.Lock()
	mock.calls.RenderPDF = append(mock.calls.RenderPDF, callInfo)
	mock.lockRenderPDF.Unlock()
	return mock.RenderPDFFunc(ctx, registerID)
}

func (mock *registerServiceMock) RenderPDFCalls() []struct {
	Ctx        context.Context
	RegisterID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		RegisterID uuid.UUID
	}
	mock.lockRenderPDF.RLock()
	calls = mock.calls.RenderPDF
	mock.lockRenderPDF.RUnlock()
	return calls
}

func (mock *registerServiceMock) Activity(ctx context.Context, registerID uuid.UUID) ([]domain.ActivityLog, error) {
	if mock.ActivityFunc == nil {
		panic("registerServiceMock.ActivityFunc: method is nil but registerService.Activity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		RegisterID uuid.UUID
	}{Ctx: ctx, RegisterID: registerID}
	mock.lockActivity.Lock()
	mock.calls.Activity = append(mock.calls.Activity, callInfo)
	mock.lockActivity.Unlock()
	return mock.ActivityFunc(ctx, registerID)
}

func (mock *registerServiceMock) ActivityCalls() []struct {
	Ctx        context.Context
	RegisterID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		RegisterID uuid.UUID
	}
	mock.lockActivity.RLock()
	calls = mock.calls.Activity
	mock.lockActivity.RUnlock()
	return calls
}

var _ reminderService = &reminderServiceMock{}

type reminderServiceMock struct {
	PendingFunc  func(ctx context.Context) ([]domain.Reminder, error)
	MarkSentFunc func(ctx context.Context, id uuid.UUID) (domain.Reminder, error)

	calls struct {
		Pending []struct {
			Ctx context.Context
		}
		MarkSent []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockPending  sync.RWMutex
	lockMarkSent sync.RWMutex
}

func (mock *reminderServiceMock) Pending(ctx context.Context) ([]domain.Reminder, error) {
	if mock.PendingFunc == nil {
		panic("reminderServiceMock.PendingFunc: method is nil but reminderService.Pending was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPending.Lock()
	mock.calls.Pending = append(mock.calls.Pending, callInfo)
	mock.lockPending.Unlock()
	return mock.PendingFunc(ctx)
}

func (mock *reminderServiceMock) PendingCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockPending.RLock()
	calls = mock.calls.Pending
	mock.lockPending.RUnlock()
	return calls
}

func (mock *reminderServiceMock) MarkSent(ctx context.Context, id uuid.UUID) (domain.Reminder, error) {
	if mock.MarkSentFunc == nil {
		panic("reminderServiceMock.MarkSentFunc: method is nil but reminderService.MarkSent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockMarkSent.Lock()
	mock.calls.MarkSent = append(mock.calls.MarkSent, callInfo)
	mock.lockMarkSent.Unlock()
	return mock.MarkSentFunc(ctx, id)
}

func (mock *reminderServiceMock) MarkSentCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockMarkSent.RLock()
	calls = mock.calls.MarkSent
	mock.lockMarkSent.RUnlock()
	return calls
}

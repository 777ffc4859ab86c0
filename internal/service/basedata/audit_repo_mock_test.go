package basedata

import (
	"context"
	"sync"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	ListByRecordFunc func(ctx context.Context, recordID int64) ([]*domain.BaseDataLog, error)
	LogFunc          func(ctx context.Context, entry *domain.BaseDataLog) error

	calls struct {
		ListByRecord []struct {
			Ctx      context.Context
			RecordID int64
		}
		Log []struct {
			Ctx   context.Context
			Entry *domain.BaseDataLog
		}
	}
	lockListByRecord sync.RWMutex
	lockLog          sync.RWMutex
}

func (mock *auditRepoMock) ListByRecord(ctx context.Context, recordID int64) ([]*domain.BaseDataLog, error) {
	if mock.ListByRecordFunc == nil {
		panic("auditRepoMock.ListByRecordFunc: method is nil but auditRepo.ListByRecord was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID int64
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockListByRecord.Lock()
	mock.calls.ListByRecord = append(mock.calls.ListByRecord, callInfo)
	mock.lockListByRecord.Unlock()
	return mock.ListByRecordFunc(ctx, recordID)
}

func (mock *auditRepoMock) ListByRecordCalls() []struct {
	Ctx      context.Context
	RecordID int64
} {
	mock.lockListByRecord.RLock()
	calls := mock.calls.ListByRecord
	mock.lockListByRecord.RUnlock()
	return calls
}

func (mock *auditRepoMock) Log(ctx context.Context, entry *domain.BaseDataLog) error {
	if mock.LogFunc == nil {
		panic("auditRepoMock.LogFunc: method is nil but auditRepo.Log was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.BaseDataLog
	}{
		Ctx:   ctx,
		Entry: entry,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, entry)
}

func (mock *auditRepoMock) LogCalls() []struct {
	Ctx   context.Context
	Entry *domain.BaseDataLog
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}


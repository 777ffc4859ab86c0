package basedata

import (
	"context"
	"sync"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

var _ versionRepo = &versionRepoMock{}

type versionRepoMock struct {
	AppendFunc             func(ctx context.Context, v *domain.BaseDataVersion) (*domain.BaseDataVersion, error)
	GetByRecordVersionFunc func(ctx context.Context, recordID int64, version int) (*domain.BaseDataVersion, error)
	ListByRecordFunc       func(ctx context.Context, recordID int64) ([]*domain.BaseDataVersion, error)
	MaxVersionFunc         func(ctx context.Context, recordID int64) (int, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			V   *domain.BaseDataVersion
		}
		GetByRecordVersion []struct {
			Ctx      context.Context
			RecordID int64
			Version  int
		}
		ListByRecord []struct {
			Ctx      context.Context
			RecordID int64
		}
		MaxVersion []struct {
			Ctx      context.Context
			RecordID int64
		}
	}
	lockAppend             sync.RWMutex
	lockGetByRecordVersion sync.RWMutex
	lockListByRecord       sync.RWMutex
	lockMaxVersion         sync.RWMutex
}

func (mock *versionRepoMock) Append(ctx context.Context, v *domain.BaseDataVersion) (*domain.BaseDataVersion, error) {
	if mock.AppendFunc == nil {
		panic("versionRepoMock.AppendFunc: method is nil but versionRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.BaseDataVersion
	}{
		Ctx: ctx,
		V:   v,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, v)
}

func (mock *versionRepoMock) AppendCalls() []struct {
	Ctx context.Context
	V   *domain.BaseDataVersion
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *versionRepoMock) GetByRecordVersion(ctx context.Context, recordID int64, version int) (*domain.BaseDataVersion, error) {
	if mock.GetByRecordVersionFunc == nil {
		panic("versionRepoMock.GetByRecordVersionFunc: method is nil but versionRepo.GetByRecordVersion was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID int64
		Version  int
	}{
		Ctx:      ctx,
		RecordID: recordID,
		Version:  version,
	}
	mock.lockGetByRecordVersion.Lock()
	mock.calls.GetByRecordVersion = append(mock.calls.GetByRecordVersion, callInfo)
	mock.lockGetByRecordVersion.Unlock()
	return mock.GetByRecordVersionFunc(ctx, recordID, version)
}

func (mock *versionRepoMock) GetByRecordVersionCalls() []struct {
	Ctx      context.Context
	RecordID int64
	Version  int
} {
	mock.lockGetByRecordVersion.RLock()
	calls := mock.calls.GetByRecordVersion
	mock.lockGetByRecordVersion.RUnlock()
	return calls
}

func (mock *versionRepoMock) ListByRecord(ctx context.Context, recordID int64) ([]*domain.BaseDataVersion, error) {
	if mock.ListByRecordFunc == nil {
		panic("versionRepoMock.ListByRecordFunc: method is nil but versionRepo.ListByRecord was just called")
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

func (mock *versionRepoMock) ListByRecordCalls() []struct {
	Ctx      context.Context
	RecordID int64
} {
	mock.lockListByRecord.RLock()
	calls := mock.calls.ListByRecord
	mock.lockListByRecord.RUnlock()
	return calls
}

func (mock *versionRepoMock) MaxVersion(ctx context.Context, recordID int64) (int, error) {
	if mock.MaxVersionFunc == nil {
		panic("versionRepoMock.MaxVersionFunc: method is nil but versionRepo.MaxVersion was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID int64
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockMaxVersion.Lock()
	mock.calls.MaxVersion = append(mock.calls.MaxVersion, callInfo)
	mock.lockMaxVersion.Unlock()
	return mock.MaxVersionFunc(ctx, recordID)
}

func (mock *versionRepoMock) MaxVersionCalls() []struct {
	Ctx      context.Context
	RecordID int64
} {
	mock.lockMaxVersion.RLock()
	calls := mock.calls.MaxVersion
	mock.lockMaxVersion.RUnlock()
	return calls
}


package dictionary

import (
	"context"
	"sync"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

var _ dictRepo = &dictRepoMock{}

type dictRepoMock struct {
	AppendVersionFunc     func(ctx context.Context, v *domain.DictValueVersion) (*domain.DictValueVersion, error)
	CreateValueFunc       func(ctx context.Context, v *domain.DictValue) (*domain.DictValue, error)
	GetTypeFunc           func(ctx context.Context, dictCode string) (*domain.DictType, error)
	GetValueFunc          func(ctx context.Context, dictCode string, valueCode string) (*domain.DictValue, error)
	GetValuesFunc         func(ctx context.Context, keys []domain.DictKey) ([]*domain.DictValue, error)
	ListActiveFunc        func(ctx context.Context, dictCode string) ([]*domain.DictValue, error)
	ListActiveByExtraFunc func(ctx context.Context, dictCode string, key string, want string) ([]*domain.DictValue, error)
	ListHistoryFunc       func(ctx context.Context, dictCode string, valueCode string) ([]*domain.DictValueVersion, error)
	ListTypesFunc         func(ctx context.Context) ([]*domain.DictType, error)
	UpdateValueFunc       func(ctx context.Context, v *domain.DictValue, expectedVersion int) (*domain.DictValue, error)

	calls struct {
		AppendVersion []struct {
			Ctx context.Context
			V   *domain.DictValueVersion
		}
		CreateValue []struct {
			Ctx context.Context
			V   *domain.DictValue
		}
		GetType []struct {
			Ctx      context.Context
			DictCode string
		}
		GetValue []struct {
			Ctx       context.Context
			DictCode  string
			ValueCode string
		}
		GetValues []struct {
			Ctx  context.Context
			Keys []domain.DictKey
		}
		ListActive []struct {
			Ctx      context.Context
			DictCode string
		}
		ListActiveByExtra []struct {
			Ctx      context.Context
			DictCode string
			Key      string
			Want     string
		}
		ListHistory []struct {
			Ctx       context.Context
			DictCode  string
			ValueCode string
		}
		ListTypes []struct {
			Ctx context.Context
		}
		UpdateValue []struct {
			Ctx             context.Context
			V               *domain.DictValue
			ExpectedVersion int
		}
	}
	lockAppendVersion     sync.RWMutex
	lockCreateValue       sync.RWMutex
	lockGetType           sync.RWMutex
	lockGetValue          sync.RWMutex
	lockGetValues         sync.RWMutex
	lockListActive        sync.RWMutex
	lockListActiveByExtra sync.RWMutex
	lockListHistory       sync.RWMutex
	lockListTypes         sync.RWMutex
	lockUpdateValue       sync.RWMutex
}

func (mock *dictRepoMock) AppendVersion(ctx context.Context, v *domain.DictValueVersion) (*domain.DictValueVersion, error) {
	if mock.AppendVersionFunc == nil {
		panic("dictRepoMock.AppendVersionFunc: method is nil but dictRepo.AppendVersion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.DictValueVersion
	}{
		Ctx: ctx,
		V:   v,
	}
	mock.lockAppendVersion.Lock()
	mock.calls.AppendVersion = append(mock.calls.AppendVersion, callInfo)
	mock.lockAppendVersion.Unlock()
	return mock.AppendVersionFunc(ctx, v)
}

func (mock *dictRepoMock) AppendVersionCalls() []struct {
	Ctx context.Context
	V   *domain.DictValueVersion
} {
	mock.lockAppendVersion.RLock()
	calls := mock.calls.AppendVersion
	mock.lockAppendVersion.RUnlock()
	return calls
}

func (mock *dictRepoMock) CreateValue(ctx context.Context, v *domain.DictValue) (*domain.DictValue, error) {
	if mock.CreateValueFunc == nil {
		panic("dictRepoMock.CreateValueFunc: method is nil but dictRepo.CreateValue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.DictValue
	}{
		Ctx: ctx,
		V:   v,
	}
	mock.lockCreateValue.Lock()
	mock.calls.CreateValue = append(mock.calls.CreateValue, callInfo)
	mock.lockCreateValue.Unlock()
	return mock.CreateValueFunc(ctx, v)
}

func (mock *dictRepoMock) CreateValueCalls() []struct {
	Ctx context.Context
	V   *domain.DictValue
} {
	mock.lockCreateValue.RLock()
	calls := mock.calls.CreateValue
	mock.lockCreateValue.RUnlock()
	return calls
}

func (mock *dictRepoMock) GetType(ctx context.Context, dictCode string) (*domain.DictType, error) {
	if mock.GetTypeFunc == nil {
		panic("dictRepoMock.GetTypeFunc: method is nil but dictRepo.GetType was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DictCode string
	}{
		Ctx:      ctx,
		DictCode: dictCode,
	}
	mock.lockGetType.Lock()
	mock.calls.GetType = append(mock.calls.GetType, callInfo)
	mock.lockGetType.Unlock()
	return mock.GetTypeFunc(ctx, dictCode)
}

func (mock *dictRepoMock) GetTypeCalls() []struct {
	Ctx      context.Context
	DictCode string
} {
	mock.lockGetType.RLock()
	calls := mock.calls.GetType
	mock.lockGetType.RUnlock()
	return calls
}

func (mock *dictRepoMock) GetValue(ctx context.Context, dictCode string, valueCode string) (*domain.DictValue, error) {
	if mock.GetValueFunc == nil {
		panic("dictRepoMock.GetValueFunc: method is nil but dictRepo.GetValue was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DictCode  string
		ValueCode string
	}{
		Ctx:       ctx,
		DictCode:  dictCode,
		ValueCode: valueCode,
	}
	mock.lockGetValue.Lock()
	mock.calls.GetValue = append(mock.calls.GetValue, callInfo)
	mock.lockGetValue.Unlock()
	return mock.GetValueFunc(ctx, dictCode, valueCode)
}

func (mock *dictRepoMock) GetValueCalls() []struct {
	Ctx       context.Context
	DictCode  string
	ValueCode string
} {
	mock.lockGetValue.RLock()
	calls := mock.calls.GetValue
	mock.lockGetValue.RUnlock()
	return calls
}

func (mock *dictRepoMock) GetValues(ctx context.Context, keys []domain.DictKey) ([]*domain.DictValue, error) {
	if mock.GetValuesFunc == nil {
		panic("dictRepoMock.GetValuesFunc: method is nil but dictRepo.GetValues was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Keys []domain.DictKey
	}{
		Ctx:  ctx,
		Keys: keys,
	}
	mock.lockGetValues.Lock()
	mock.calls.GetValues = append(mock.calls.GetValues, callInfo)
	mock.lockGetValues.Unlock()
	return mock.GetValuesFunc(ctx, keys)
}

func (mock *dictRepoMock) GetValuesCalls() []struct {
	Ctx  context.Context
	Keys []domain.DictKey
} {
	mock.lockGetValues.RLock()
	calls := mock.calls.GetValues
	mock.lockGetValues.RUnlock()
	return calls
}

func (mock *dictRepoMock) ListActive(ctx context.Context, dictCode string) ([]*domain.DictValue, error) {
	if mock.ListActiveFunc == nil {
		panic("dictRepoMock.ListActiveFunc: method is nil but dictRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DictCode string
	}{
		Ctx:      ctx,
		DictCode: dictCode,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, dictCode)
}

func (mock *dictRepoMock) ListActiveCalls() []struct {
	Ctx      context.Context
	DictCode string
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *dictRepoMock) ListActiveByExtra(ctx context.Context, dictCode string, key string, want string) ([]*domain.DictValue, error) {
	if mock.ListActiveByExtraFunc == nil {
		panic("dictRepoMock.ListActiveByExtraFunc: method is nil but dictRepo.ListActiveByExtra was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DictCode string
		Key      string
		Want     string
	}{
		Ctx:      ctx,
		DictCode: dictCode,
		Key:      key,
		Want:     want,
	}
	mock.lockListActiveByExtra.Lock()
	mock.calls.ListActiveByExtra = append(mock.calls.ListActiveByExtra, callInfo)
	mock.lockListActiveByExtra.Unlock()
	return mock.ListActiveByExtraFunc(ctx, dictCode, key, want)
}

func (mock *dictRepoMock) ListActiveByExtraCalls() []struct {
	Ctx      context.Context
	DictCode string
	Key      string
	Want     string
} {
	mock.lockListActiveByExtra.RLock()
	calls := mock.calls.ListActiveByExtra
	mock.lockListActiveByExtra.RUnlock()
	return calls
}

func (mock *dictRepoMock) ListHistory(ctx context.Context, dictCode string, valueCode string) ([]*domain.DictValueVersion, error) {
	if mock.ListHistoryFunc == nil {
		panic("dictRepoMock.ListHistoryFunc: method is nil but dictRepo.ListHistory was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DictCode  string
		ValueCode string
	}{
		Ctx:       ctx,
		DictCode:  dictCode,
		ValueCode: valueCode,
	}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, dictCode, valueCode)
}

func (mock *dictRepoMock) ListHistoryCalls() []struct {
	Ctx       context.Context
	DictCode  string
	ValueCode string
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}

func (mock *dictRepoMock) ListTypes(ctx context.Context) ([]*domain.DictType, error) {
	if mock.ListTypesFunc == nil {
		panic("dictRepoMock.ListTypesFunc: method is nil but dictRepo.ListTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListTypes.Lock()
	mock.calls.ListTypes = append(mock.calls.ListTypes, callInfo)
	mock.lockListTypes.Unlock()
	return mock.ListTypesFunc(ctx)
}

func (mock *dictRepoMock) ListTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTypes.RLock()
	calls := mock.calls.ListTypes
	mock.lockListTypes.RUnlock()
	return calls
}

func (mock *dictRepoMock) UpdateValue(ctx context.Context, v *domain.DictValue, expectedVersion int) (*domain.DictValue, error) {
	if mock.UpdateValueFunc == nil {
		panic("dictRepoMock.UpdateValueFunc: method is nil but dictRepo.UpdateValue was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		V               *domain.DictValue
		ExpectedVersion int
	}{
		Ctx:             ctx,
		V:               v,
		ExpectedVersion: expectedVersion,
	}
	mock.lockUpdateValue.Lock()
	mock.calls.UpdateValue = append(mock.calls.UpdateValue, callInfo)
	mock.lockUpdateValue.Unlock()
	return mock.UpdateValueFunc(ctx, v, expectedVersion)
}

func (mock *dictRepoMock) UpdateValueCalls() []struct {
	Ctx             context.Context
	V               *domain.DictValue
	ExpectedVersion int
} {
	mock.lockUpdateValue.RLock()
	calls := mock.calls.UpdateValue
	mock.lockUpdateValue.RUnlock()
	return calls
}


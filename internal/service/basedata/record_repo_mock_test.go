package basedata

import (
	"context"
	"sync"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateFunc         func(ctx context.Context, rec *domain.BaseData) (*domain.BaseData, error)
	DeleteFunc         func(ctx context.Context, id int64) error
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.BaseData, error)
	GetByTypeValueFunc func(ctx context.Context, typ string, value string) (*domain.BaseData, error)
	ListFunc           func(ctx context.Context) ([]*domain.BaseData, error)
	ListByTypeFunc     func(ctx context.Context, typ string) ([]*domain.BaseData, error)
	UpdateFunc         func(ctx context.Context, rec *domain.BaseData, expectedVersion *int) (*domain.BaseData, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.BaseData
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetByTypeValue []struct {
			Ctx   context.Context
			Typ   string
			Value string
		}
		List []struct {
			Ctx context.Context
		}
		ListByType []struct {
			Ctx context.Context
			Typ string
		}
		Update []struct {
			Ctx             context.Context
			Rec             *domain.BaseData
			ExpectedVersion *int
		}
	}
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockGetByTypeValue sync.RWMutex
	lockList           sync.RWMutex
	lockListByType     sync.RWMutex
	lockUpdate         sync.RWMutex
}

func (mock *recordRepoMock) Create(ctx context.Context, rec *domain.BaseData) (*domain.BaseData, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.BaseData
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.BaseData
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *recordRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByID(ctx context.Context, id int64) (*domain.BaseData, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByTypeValue(ctx context.Context, typ string, value string) (*domain.BaseData, error) {
	if mock.GetByTypeValueFunc == nil {
		panic("recordRepoMock.GetByTypeValueFunc: method is nil but recordRepo.GetByTypeValue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Typ   string
		Value string
	}{
		Ctx:   ctx,
		Typ:   typ,
		Value: value,
	}
	mock.lockGetByTypeValue.Lock()
	mock.calls.GetByTypeValue = append(mock.calls.GetByTypeValue, callInfo)
	mock.lockGetByTypeValue.Unlock()
	return mock.GetByTypeValueFunc(ctx, typ, value)
}

func (mock *recordRepoMock) GetByTypeValueCalls() []struct {
	Ctx   context.Context
	Typ   string
	Value string
} {
	mock.lockGetByTypeValue.RLock()
	calls := mock.calls.GetByTypeValue
	mock.lockGetByTypeValue.RUnlock()
	return calls
}

func (mock *recordRepoMock) List(ctx context.Context) ([]*domain.BaseData, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *recordRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordRepoMock) ListByType(ctx context.Context, typ string) ([]*domain.BaseData, error) {
	if mock.ListByTypeFunc == nil {
		panic("recordRepoMock.ListByTypeFunc: method is nil but recordRepo.ListByType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Typ string
	}{
		Ctx: ctx,
		Typ: typ,
	}
	mock.lockListByType.Lock()
	mock.calls.ListByType = append(mock.calls.ListByType, callInfo)
	mock.lockListByType.Unlock()
	return mock.ListByTypeFunc(ctx, typ)
}

func (mock *recordRepoMock) ListByTypeCalls() []struct {
	Ctx context.Context
	Typ string
} {
	mock.lockListByType.RLock()
	calls := mock.calls.ListByType
	mock.lockListByType.RUnlock()
	return calls
}

func (mock *recordRepoMock) Update(ctx context.Context, rec *domain.BaseData, expectedVersion *int) (*domain.BaseData, error) {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		Rec             *domain.BaseData
		ExpectedVersion *int
	}{
		Ctx:             ctx,
		Rec:             rec,
		ExpectedVersion: expectedVersion,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec, expectedVersion)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	Ctx             context.Context
	Rec             *domain.BaseData
	ExpectedVersion *int
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}


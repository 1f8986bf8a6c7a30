package agreement

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

var _ agreementRepo = &agreementRepoMock{}

type agreementRepoMock struct {
	CreateFunc        func(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	GetForUpdateFunc  func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	ListFunc          func(ctx context.Context, f domain.AgreementFilter) ([]domain.Agreement, error)
	MarkCompletedFunc func(ctx context.Context, id uuid.UUID) (bool, error)
	SetStatusFunc     func(ctx context.Context, id uuid.UUID, status domain.AgreementStatus) error
	UpdateFunc        func(ctx context.Context, id uuid.UUID, p domain.AgreementUpdateParams) (*domain.Agreement, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Agreement
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.AgreementFilter
		}
		MarkCompleted []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.AgreementStatus
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.AgreementUpdateParams
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetForUpdate  sync.RWMutex
	lockList          sync.RWMutex
	lockMarkCompleted sync.RWMutex
	lockSetStatus     sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *agreementRepoMock) Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error) {
	if mock.CreateFunc == nil {
		panic("agreementRepoMock.CreateFunc: method is nil but agreementRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Agreement
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *agreementRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Agreement
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *agreementRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("agreementRepoMock.DeleteFunc: method is nil but agreementRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *agreementRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *agreementRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	if mock.GetByIDFunc == nil {
		panic("agreementRepoMock.GetByIDFunc: method is nil but agreementRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *agreementRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *agreementRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	if mock.GetForUpdateFunc == nil {
		panic("agreementRepoMock.GetForUpdateFunc: method is nil but agreementRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *agreementRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *agreementRepoMock) List(ctx context.Context, f domain.AgreementFilter) ([]domain.Agreement, error) {
	if mock.ListFunc == nil {
		panic("agreementRepoMock.ListFunc: method is nil but agreementRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AgreementFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *agreementRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AgreementFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *agreementRepoMock) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.MarkCompletedFunc == nil {
		panic("agreementRepoMock.MarkCompletedFunc: method is nil but agreementRepo.MarkCompleted was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, id)
}

func (mock *agreementRepoMock) MarkCompletedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}

func (mock *agreementRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.AgreementStatus) error {
	if mock.SetStatusFunc == nil {
		panic("agreementRepoMock.SetStatusFunc: method is nil but agreementRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.AgreementStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *agreementRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.AgreementStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *agreementRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.AgreementUpdateParams) (*domain.Agreement, error) {
	if mock.UpdateFunc == nil {
		panic("agreementRepoMock.UpdateFunc: method is nil but agreementRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.AgreementUpdateParams
	}{
		Ctx: ctx,
		ID:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *agreementRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.AgreementUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

var _ emailLogRepo = &emailLogRepoMock{}

type emailLogRepoMock struct {
	CreateFunc     func(ctx context.Context, l domain.EmailLog) error
	MarkFailedFunc func(ctx context.Context, id uuid.UUID, reason string) error
	MarkSentFunc   func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.EmailLog
		}
		MarkFailed []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Reason string
		}
		MarkSent []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockCreate     sync.RWMutex
	lockMarkFailed sync.RWMutex
	lockMarkSent   sync.RWMutex
}

func (mock *emailLogRepoMock) Create(ctx context.Context, l domain.EmailLog) error {
	if mock.CreateFunc == nil {
		panic("emailLogRepoMock.CreateFunc: method is nil but emailLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.EmailLog
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *emailLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.EmailLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *emailLogRepoMock) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if mock.MarkFailedFunc == nil {
		panic("emailLogRepoMock.MarkFailedFunc: method is nil but emailLogRepo.MarkFailed was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Reason string
	}{
		Ctx:    ctx,
		ID:     id,
		Reason: reason,
	}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, id, reason)
}

func (mock *emailLogRepoMock) MarkFailedCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Reason string
} {
	mock.lockMarkFailed.RLock()
	calls := mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
	return calls
}

func (mock *emailLogRepoMock) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkSentFunc == nil {
		panic("emailLogRepoMock.MarkSentFunc: method is nil but emailLogRepo.MarkSent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		ID:  id,
		At:  at,
	}
	mock.lockMarkSent.Lock()
	mock.calls.MarkSent = append(mock.calls.MarkSent, callInfo)
	mock.lockMarkSent.Unlock()
	return mock.MarkSentFunc(ctx, id, at)
}

func (mock *emailLogRepoMock) MarkSentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkSent.RLock()
	calls := mock.calls.MarkSent
	mock.lockMarkSent.RUnlock()
	return calls
}

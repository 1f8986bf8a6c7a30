package agreement

import (
	"context"
	"sync"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

var _ adminAuditLogger = &adminAuditLoggerMock{}

type adminAuditLoggerMock struct {
	LogFunc func(ctx context.Context, a domain.AdminAction) error

	calls struct {
		Log []struct {
			Ctx context.Context
			A   domain.AdminAction
		}
	}
	lockLog sync.RWMutex
}

func (mock *adminAuditLoggerMock) Log(ctx context.Context, a domain.AdminAction) error {
	if mock.LogFunc == nil {
		panic("adminAuditLoggerMock.LogFunc: method is nil but adminAuditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.AdminAction
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, a)
}

func (mock *adminAuditLoggerMock) LogCalls() []struct {
	Ctx context.Context
	A   domain.AdminAction
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

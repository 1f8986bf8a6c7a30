package agreement

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

var _ auditLog = &auditLogMock{}

type auditLogMock struct {
	AppendFunc          func(ctx context.Context, e domain.AuditLogEntry) error
	ListByAgreementFunc func(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			E   domain.AuditLogEntry
		}
		ListByAgreement []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
		}
	}
	lockAppend          sync.RWMutex
	lockListByAgreement sync.RWMutex
}

func (mock *auditLogMock) Append(ctx context.Context, e domain.AuditLogEntry) error {
	if mock.AppendFunc == nil {
		panic("auditLogMock.AppendFunc: method is nil but auditLog.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.AuditLogEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *auditLogMock) AppendCalls() []struct {
	Ctx context.Context
	E   domain.AuditLogEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *auditLogMock) ListByAgreement(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error) {
	if mock.ListByAgreementFunc == nil {
		panic("auditLogMock.ListByAgreementFunc: method is nil but auditLog.ListByAgreement was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
	}
	mock.lockListByAgreement.Lock()
	mock.calls.ListByAgreement = append(mock.calls.ListByAgreement, callInfo)
	mock.lockListByAgreement.Unlock()
	return mock.ListByAgreementFunc(ctx, agreementID)
}

func (mock *auditLogMock) ListByAgreementCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
} {
	mock.lockListByAgreement.RLock()
	calls := mock.calls.ListByAgreement
	mock.lockListByAgreement.RUnlock()
	return calls
}

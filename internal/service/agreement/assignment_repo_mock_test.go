package agreement

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	GetByAgreementAndUserFunc func(ctx context.Context, agreementID uuid.UUID, userID uuid.UUID) (*domain.Assignment, error)
	ListByAgreementFunc       func(ctx context.Context, agreementID uuid.UUID) ([]domain.Assignment, error)
	ListDetailsFunc           func(ctx context.Context, f domain.AssignmentFilter) ([]domain.AssignmentDetail, error)
	MarkSignedFunc            func(ctx context.Context, id uuid.UUID, c domain.SignatureCapture) (*domain.Assignment, error)
	UpsertFunc                func(ctx context.Context, agreementID uuid.UUID, userID uuid.UUID, role *string, deadline *time.Time) (*domain.Assignment, error)

	calls struct {
		GetByAgreementAndUser []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
			UserID      uuid.UUID
		}
		ListByAgreement []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
		}
		ListDetails []struct {
			Ctx context.Context
			F   domain.AssignmentFilter
		}
		MarkSigned []struct {
			Ctx context.Context
			ID  uuid.UUID
			C   domain.SignatureCapture
		}
		Upsert []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
			UserID      uuid.UUID
			Role        *string
			Deadline    *time.Time
		}
	}
	lockGetByAgreementAndUser sync.RWMutex
	lockListByAgreement       sync.RWMutex
	lockListDetails           sync.RWMutex
	lockMarkSigned            sync.RWMutex
	lockUpsert                sync.RWMutex
}

func (mock *assignmentRepoMock) GetByAgreementAndUser(ctx context.Context, agreementID uuid.UUID, userID uuid.UUID) (*domain.Assignment, error) {
	if mock.GetByAgreementAndUserFunc == nil {
		panic("assignmentRepoMock.GetByAgreementAndUserFunc: method is nil but assignmentRepo.GetByAgreementAndUser was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
		UserID      uuid.UUID
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
		UserID:      userID,
	}
	mock.lockGetByAgreementAndUser.Lock()
	mock.calls.GetByAgreementAndUser = append(mock.calls.GetByAgreementAndUser, callInfo)
	mock.lockGetByAgreementAndUser.Unlock()
	return mock.GetByAgreementAndUserFunc(ctx, agreementID, userID)
}

func (mock *assignmentRepoMock) GetByAgreementAndUserCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
	UserID      uuid.UUID
} {
	mock.lockGetByAgreementAndUser.RLock()
	calls := mock.calls.GetByAgreementAndUser
	mock.lockGetByAgreementAndUser.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) ListByAgreement(ctx context.Context, agreementID uuid.UUID) ([]domain.Assignment, error) {
	if mock.ListByAgreementFunc == nil {
		panic("assignmentRepoMock.ListByAgreementFunc: method is nil but assignmentRepo.ListByAgreement was just called")
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

func (mock *assignmentRepoMock) ListByAgreementCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
} {
	mock.lockListByAgreement.RLock()
	calls := mock.calls.ListByAgreement
	mock.lockListByAgreement.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) ListDetails(ctx context.Context, f domain.AssignmentFilter) ([]domain.AssignmentDetail, error) {
	if mock.ListDetailsFunc == nil {
		panic("assignmentRepoMock.ListDetailsFunc: method is nil but assignmentRepo.ListDetails was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AssignmentFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockListDetails.Lock()
	mock.calls.ListDetails = append(mock.calls.ListDetails, callInfo)
	mock.lockListDetails.Unlock()
	return mock.ListDetailsFunc(ctx, f)
}

func (mock *assignmentRepoMock) ListDetailsCalls() []struct {
	Ctx context.Context
	F   domain.AssignmentFilter
} {
	mock.lockListDetails.RLock()
	calls := mock.calls.ListDetails
	mock.lockListDetails.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) MarkSigned(ctx context.Context, id uuid.UUID, c domain.SignatureCapture) (*domain.Assignment, error) {
	if mock.MarkSignedFunc == nil {
		panic("assignmentRepoMock.MarkSignedFunc: method is nil but assignmentRepo.MarkSigned was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		C   domain.SignatureCapture
	}{
		Ctx: ctx,
		ID:  id,
		C:   c,
	}
	mock.lockMarkSigned.Lock()
	mock.calls.MarkSigned = append(mock.calls.MarkSigned, callInfo)
	mock.lockMarkSigned.Unlock()
	return mock.MarkSignedFunc(ctx, id, c)
}

func (mock *assignmentRepoMock) MarkSignedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	C   domain.SignatureCapture
} {
	mock.lockMarkSigned.RLock()
	calls := mock.calls.MarkSigned
	mock.lockMarkSigned.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) Upsert(ctx context.Context, agreementID uuid.UUID, userID uuid.UUID, role *string, deadline *time.Time) (*domain.Assignment, error) {
	if mock.UpsertFunc == nil {
		panic("assignmentRepoMock.UpsertFunc: method is nil but assignmentRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
		UserID      uuid.UUID
		Role        *string
		Deadline    *time.Time
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
		UserID:      userID,
		Role:        role,
		Deadline:    deadline,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, agreementID, userID, role, deadline)
}

func (mock *assignmentRepoMock) UpsertCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
	UserID      uuid.UUID
	Role        *string
	Deadline    *time.Time
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

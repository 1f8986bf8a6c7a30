package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/internal/service/agreement"
)

var _ agreementService = &agreementServiceMock{}

type agreementServiceMock struct {
	AssignFunc             func(ctx context.Context, input agreement.AssignInput) ([]domain.Assignment, error)
	CreateFunc             func(ctx context.Context, input agreement.CreateInput) (*domain.Agreement, error)
	CreateFromTemplateFunc func(ctx context.Context, input agreement.FromTemplateInput) (*domain.Agreement, error)
	DeleteFunc             func(ctx context.Context, agreementID uuid.UUID) error
	ExportAssignmentsFunc  func(ctx context.Context, input agreement.AssignmentListInput) (*agreement.Export, error)
	ExportHTMLFunc         func(ctx context.Context, agreementID uuid.UUID) (*agreement.Export, error)
	GetFunc                func(ctx context.Context, agreementID uuid.UUID) (*agreement.AgreementWithSigners, error)
	ListFunc               func(ctx context.Context, input agreement.ListInput) ([]domain.Agreement, error)
	ListAssignedFunc       func(ctx context.Context) ([]domain.AssignmentDetail, error)
	ListAssignmentsFunc    func(ctx context.Context, input agreement.AssignmentListInput) ([]domain.AssignmentDetail, error)
	LogsFunc               func(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error)
	SignFunc               func(ctx context.Context, input agreement.SignInput) (*agreement.SignResult, error)
	StatusFunc             func(ctx context.Context, agreementID uuid.UUID) ([]domain.AssignmentDetail, error)
	UpdateFunc             func(ctx context.Context, input agreement.UpdateInput) (*domain.Agreement, error)
	ViewFunc               func(ctx context.Context, agreementID uuid.UUID) (*domain.Agreement, error)

	calls struct {
		Assign []struct {
			Ctx   context.Context
			Input agreement.AssignInput
		}
		Create []struct {
			Ctx   context.Context
			Input agreement.CreateInput
		}
		CreateFromTemplate []struct {
			Ctx   context.Context
			Input agreement.FromTemplateInput
		}
		Delete []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
		}
		ExportAssignments []struct {
			Ctx   context.Context
			Input agreement.AssignmentListInput
		}
		ExportHTML []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
		}
		Get []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input agreement.ListInput
		}
		ListAssigned []struct {
			Ctx context.Context
		}
		ListAssignments []struct {
			Ctx   context.Context
			Input agreement.AssignmentListInput
		}
		Logs []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
		}
		Sign []struct {
			Ctx   context.Context
			Input agreement.SignInput
		}
		Status []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			Input agreement.UpdateInput
		}
		View []struct {
			Ctx         context.Context
			AgreementID uuid.UUID
		}
	}
	lockAssign             sync.RWMutex
	lockCreate             sync.RWMutex
	lockCreateFromTemplate sync.RWMutex
	lockDelete             sync.RWMutex
	lockExportAssignments  sync.RWMutex
	lockExportHTML         sync.RWMutex
	lockGet                sync.RWMutex
	lockList               sync.RWMutex
	lockListAssigned       sync.RWMutex
	lockListAssignments    sync.RWMutex
	lockLogs               sync.RWMutex
	lockSign               sync.RWMutex
	lockStatus             sync.RWMutex
	lockUpdate             sync.RWMutex
	lockView               sync.RWMutex
}

func (mock *agreementServiceMock) Assign(ctx context.Context, input agreement.AssignInput) ([]domain.Assignment, error) {
	if mock.AssignFunc == nil {
		panic("agreementServiceMock.AssignFunc: method is nil but agreementService.Assign was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input agreement.AssignInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, input)
}

func (mock *agreementServiceMock) AssignCalls() []struct {
	Ctx   context.Context
	Input agreement.AssignInput
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

func (mock *agreementServiceMock) Create(ctx context.Context, input agreement.CreateInput) (*domain.Agreement, error) {
	if mock.CreateFunc == nil {
		panic("agreementServiceMock.CreateFunc: method is nil but agreementService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input agreement.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *agreementServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input agreement.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *agreementServiceMock) CreateFromTemplate(ctx context.Context, input agreement.FromTemplateInput) (*domain.Agreement, error) {
	if mock.CreateFromTemplateFunc == nil {
		panic("agreementServiceMock.CreateFromTemplateFunc: method is nil but agreementService.CreateFromTemplate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input agreement.FromTemplateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateFromTemplate.Lock()
	mock.calls.CreateFromTemplate = append(mock.calls.CreateFromTemplate, callInfo)
	mock.lockCreateFromTemplate.Unlock()
	return mock.CreateFromTemplateFunc(ctx, input)
}

func (mock *agreementServiceMock) CreateFromTemplateCalls() []struct {
	Ctx   context.Context
	Input agreement.FromTemplateInput
} {
	mock.lockCreateFromTemplate.RLock()
	calls := mock.calls.CreateFromTemplate
	mock.lockCreateFromTemplate.RUnlock()
	return calls
}

func (mock *agreementServiceMock) Delete(ctx context.Context, agreementID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("agreementServiceMock.DeleteFunc: method is nil but agreementService.Delete was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, agreementID)
}

func (mock *agreementServiceMock) DeleteCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *agreementServiceMock) ExportAssignments(ctx context.Context, input agreement.AssignmentListInput) (*agreement.Export, error) {
	if mock.ExportAssignmentsFunc == nil {
		panic("agreementServiceMock.ExportAssignmentsFunc: method is nil but agreementService.ExportAssignments was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input agreement.AssignmentListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockExportAssignments.Lock()
	mock.calls.ExportAssignments = append(mock.calls.ExportAssignments, callInfo)
	mock.lockExportAssignments.Unlock()
	return mock.ExportAssignmentsFunc(ctx, input)
}

func (mock *agreementServiceMock) ExportAssignmentsCalls() []struct {
	Ctx   context.Context
	Input agreement.AssignmentListInput
} {
	mock.lockExportAssignments.RLock()
	calls := mock.calls.ExportAssignments
	mock.lockExportAssignments.RUnlock()
	return calls
}

func (mock *agreementServiceMock) ExportHTML(ctx context.Context, agreementID uuid.UUID) (*agreement.Export, error) {
	if mock.ExportHTMLFunc == nil {
		panic("agreementServiceMock.ExportHTMLFunc: method is nil but agreementService.ExportHTML was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
	}
	mock.lockExportHTML.Lock()
	mock.calls.ExportHTML = append(mock.calls.ExportHTML, callInfo)
	mock.lockExportHTML.Unlock()
	return mock.ExportHTMLFunc(ctx, agreementID)
}

func (mock *agreementServiceMock) ExportHTMLCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
} {
	mock.lockExportHTML.RLock()
	calls := mock.calls.ExportHTML
	mock.lockExportHTML.RUnlock()
	return calls
}

func (mock *agreementServiceMock) Get(ctx context.Context, agreementID uuid.UUID) (*agreement.AgreementWithSigners, error) {
	if mock.GetFunc == nil {
		panic("agreementServiceMock.GetFunc: method is nil but agreementService.Get was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, agreementID)
}

func (mock *agreementServiceMock) GetCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *agreementServiceMock) List(ctx context.Context, input agreement.ListInput) ([]domain.Agreement, error) {
	if mock.ListFunc == nil {
		panic("agreementServiceMock.ListFunc: method is nil but agreementService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input agreement.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *agreementServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input agreement.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *agreementServiceMock) ListAssigned(ctx context.Context) ([]domain.AssignmentDetail, error) {
	if mock.ListAssignedFunc == nil {
		panic("agreementServiceMock.ListAssignedFunc: method is nil but agreementService.ListAssigned was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAssigned.Lock()
	mock.calls.ListAssigned = append(mock.calls.ListAssigned, callInfo)
	mock.lockListAssigned.Unlock()
	return mock.ListAssignedFunc(ctx)
}

func (mock *agreementServiceMock) ListAssignedCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAssigned.RLock()
	calls := mock.calls.ListAssigned
	mock.lockListAssigned.RUnlock()
	return calls
}

func (mock *agreementServiceMock) ListAssignments(ctx context.Context, input agreement.AssignmentListInput) ([]domain.AssignmentDetail, error) {
	if mock.ListAssignmentsFunc == nil {
		panic("agreementServiceMock.ListAssignmentsFunc: method is nil but agreementService.ListAssignments was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input agreement.AssignmentListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListAssignments.Lock()
	mock.calls.ListAssignments = append(mock.calls.ListAssignments, callInfo)
	mock.lockListAssignments.Unlock()
	return mock.ListAssignmentsFunc(ctx, input)
}

func (mock *agreementServiceMock) ListAssignmentsCalls() []struct {
	Ctx   context.Context
	Input agreement.AssignmentListInput
} {
	mock.lockListAssignments.RLock()
	calls := mock.calls.ListAssignments
	mock.lockListAssignments.RUnlock()
	return calls
}

func (mock *agreementServiceMock) Logs(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error) {
	if mock.LogsFunc == nil {
		panic("agreementServiceMock.LogsFunc: method is nil but agreementService.Logs was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
	}
	mock.lockLogs.Lock()
	mock.calls.Logs = append(mock.calls.Logs, callInfo)
	mock.lockLogs.Unlock()
	return mock.LogsFunc(ctx, agreementID)
}

func (mock *agreementServiceMock) LogsCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
} {
	mock.lockLogs.RLock()
	calls := mock.calls.Logs
	mock.lockLogs.RUnlock()
	return calls
}

func (mock *agreementServiceMock) Sign(ctx context.Context, input agreement.SignInput) (*agreement.SignResult, error) {
	if mock.SignFunc == nil {
		panic("agreementServiceMock.SignFunc: method is nil but agreementService.Sign was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input agreement.SignInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSign.Lock()
	mock.calls.Sign = append(mock.calls.Sign, callInfo)
	mock.lockSign.Unlock()
	return mock.SignFunc(ctx, input)
}

func (mock *agreementServiceMock) SignCalls() []struct {
	Ctx   context.Context
	Input agreement.SignInput
} {
	mock.lockSign.RLock()
	calls := mock.calls.Sign
	mock.lockSign.RUnlock()
	return calls
}

func (mock *agreementServiceMock) Status(ctx context.Context, agreementID uuid.UUID) ([]domain.AssignmentDetail, error) {
	if mock.StatusFunc == nil {
		panic("agreementServiceMock.StatusFunc: method is nil but agreementService.Status was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
	}
	mock.lockStatus.Lock()
	mock.calls.Status = append(mock.calls.Status, callInfo)
	mock.lockStatus.Unlock()
	return mock.StatusFunc(ctx, agreementID)
}

func (mock *agreementServiceMock) StatusCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
} {
	mock.lockStatus.RLock()
	calls := mock.calls.Status
	mock.lockStatus.RUnlock()
	return calls
}

func (mock *agreementServiceMock) Update(ctx context.Context, input agreement.UpdateInput) (*domain.Agreement, error) {
	if mock.UpdateFunc == nil {
		panic("agreementServiceMock.UpdateFunc: method is nil but agreementService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input agreement.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *agreementServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input agreement.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *agreementServiceMock) View(ctx context.Context, agreementID uuid.UUID) (*domain.Agreement, error) {
	if mock.ViewFunc == nil {
		panic("agreementServiceMock.ViewFunc: method is nil but agreementService.View was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		AgreementID uuid.UUID
	}{
		Ctx:         ctx,
		AgreementID: agreementID,
	}
	mock.lockView.Lock()
	mock.calls.View = append(mock.calls.View, callInfo)
	mock.lockView.Unlock()
	return mock.ViewFunc(ctx, agreementID)
}

func (mock *agreementServiceMock) ViewCalls() []struct {
	Ctx         context.Context
	AgreementID uuid.UUID
} {
	mock.lockView.RLock()
	calls := mock.calls.View
	mock.lockView.RUnlock()
	return calls
}

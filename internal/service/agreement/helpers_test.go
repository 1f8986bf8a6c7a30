package agreement

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/pkg/ctxutil"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func adminCtx() context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	return ctxutil.WithUserRole(ctx, "super_admin")
}

func readerCtx() context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	return ctxutil.WithUserRole(ctx, "finance_admin")
}

func userCtx(id uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), id)
	ctx = ctxutil.WithUserRole(ctx, "user")
	return ctxutil.WithClientInfo(ctx, ctxutil.ClientInfo{IP: "203.0.113.7", UserAgent: "Mozilla/5.0 (X11; Linux x86_64)"})
}

// fixture bundles the service mocks. Every mock starts with a permissive
// default; tests override the funcs they care about.
type fixture struct {
	agreements  *agreementRepoMock
	assignments *assignmentRepoMock
	auditLog    *auditLogMock
	adminAudit  *adminAuditLoggerMock
	users       *userRepoMock
	tx          *txManagerMock
	notifier    *NotificationSenderMock
	copies      *SignedCopyStoreMock
}

func newFixture() *fixture {
	f := &fixture{
		agreements: &agreementRepoMock{},
		assignments: &assignmentRepoMock{
			ListDetailsFunc: func(ctx context.Context, f domain.AssignmentFilter) ([]domain.AssignmentDetail, error) {
				return nil, nil
			},
		},
		auditLog: &auditLogMock{
			AppendFunc: func(ctx context.Context, e domain.AuditLogEntry) error { return nil },
		},
		adminAudit: &adminAuditLoggerMock{
			LogFunc: func(ctx context.Context, a domain.AdminAction) error { return nil },
		},
		users: &userRepoMock{},
		tx:    defaultTxMock(),
		notifier: &NotificationSenderMock{
			SendFunc: func(ctx context.Context, notices ...domain.Notice) error { return nil },
		},
		copies: &SignedCopyStoreMock{
			PutFunc: func(ctx context.Context, key string, body []byte, contentType string) error { return nil },
		},
	}
	// Locking reads see the same rows as plain reads.
	f.agreements.GetForUpdateFunc = func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
		return f.agreements.GetByIDFunc(ctx, id)
	}
	return f
}

func (f *fixture) service(t *testing.T) *Service {
	t.Helper()
	svc := NewService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config{DispatchTimeout: time.Second},
		f.agreements,
		f.assignments,
		f.auditLog,
		f.adminAudit,
		f.users,
		f.tx,
		f.notifier,
		f.copies,
		nil,
	)
	svc.now = func() time.Time { return fixedNow }
	t.Cleanup(svc.Wait)
	return svc
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func sentNotices(m *NotificationSenderMock) []domain.Notice {
	var out []domain.Notice
	for _, c := range m.SendCalls() {
		out = append(out, c.Notices...)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

// memStore is a small in-memory agreement store used by end-to-end
// workflow tests. It honours the same contracts as the postgres repos.
type memStore struct {
	mu          sync.Mutex
	agreements  map[uuid.UUID]*domain.Agreement
	assignments []*domain.Assignment
	logs        []domain.AuditLogEntry
	users       map[uuid.UUID]domain.User
}

func newMemStore(users ...domain.User) *memStore {
	s := &memStore{
		agreements: make(map[uuid.UUID]*domain.Agreement),
		users:      make(map[uuid.UUID]domain.User),
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memStore) wire(f *fixture) {
	f.agreements.CreateFunc = func(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		cp := *a
		s.agreements[a.ID] = &cp
		out := cp
		return &out, nil
	}
	f.agreements.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		a, ok := s.agreements[id]
		if !ok {
			return nil, domain.ErrNotFound
		}
		out := *a
		return &out, nil
	}
	f.agreements.SetStatusFunc = func(ctx context.Context, id uuid.UUID, status domain.AgreementStatus) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.agreements[id].Status = status
		return nil
	}
	f.agreements.MarkCompletedFunc = func(ctx context.Context, id uuid.UUID) (bool, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		a := s.agreements[id]
		if a.Status == domain.AgreementStatusCompleted {
			return false, nil
		}
		a.Status = domain.AgreementStatusCompleted
		return true, nil
	}
	f.users.GetByIDsFunc = func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		var out []domain.User
		for _, id := range ids {
			if u, ok := s.users[id]; ok {
				out = append(out, u)
			}
		}
		return out, nil
	}
	f.assignments.UpsertFunc = func(ctx context.Context, agreementID, userID uuid.UUID, role *string, deadline *time.Time) (*domain.Assignment, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, a := range s.assignments {
			if a.AgreementID == agreementID && a.UserID == userID {
				a.Role, a.Deadline = role, deadline
				out := *a
				return &out, nil
			}
		}
		a := &domain.Assignment{
			ID: uuid.New(), AgreementID: agreementID, UserID: userID,
			Status: domain.AssignmentStatusPending, Role: role, Deadline: deadline,
		}
		s.assignments = append(s.assignments, a)
		out := *a
		return &out, nil
	}
	f.assignments.GetByAgreementAndUserFunc = func(ctx context.Context, agreementID, userID uuid.UUID) (*domain.Assignment, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, a := range s.assignments {
			if a.AgreementID == agreementID && a.UserID == userID {
				out := *a
				return &out, nil
			}
		}
		return nil, domain.ErrNotFound
	}
	f.assignments.ListByAgreementFunc = func(ctx context.Context, agreementID uuid.UUID) ([]domain.Assignment, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		var out []domain.Assignment
		for _, a := range s.assignments {
			if a.AgreementID == agreementID {
				out = append(out, *a)
			}
		}
		return out, nil
	}
	f.assignments.ListDetailsFunc = func(ctx context.Context, filter domain.AssignmentFilter) ([]domain.AssignmentDetail, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		var out []domain.AssignmentDetail
		for _, a := range s.assignments {
			if filter.AgreementID != nil && a.AgreementID != *filter.AgreementID {
				continue
			}
			if filter.UserID != nil && a.UserID != *filter.UserID {
				continue
			}
			ag := s.agreements[a.AgreementID]
			u := s.users[a.UserID]
			out = append(out, domain.AssignmentDetail{
				Assignment:      *a,
				AgreementTitle:  ag.Title,
				AgreementType:   ag.Type,
				AgreementStatus: ag.Status,
				SignerName:      u.Name,
				SignerEmail:     u.Email,
			})
		}
		return out, nil
	}
	f.assignments.MarkSignedFunc = func(ctx context.Context, id uuid.UUID, c domain.SignatureCapture) (*domain.Assignment, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, a := range s.assignments {
			if a.ID != id {
				continue
			}
			if a.IsSigned() {
				return nil, domain.ErrAlreadySigned
			}
			a.Status = domain.AssignmentStatusSigned
			a.SignedAt = &c.SignedAt
			a.Signature, a.IPAddress, a.DeviceInfo = c.Signature, c.IPAddress, c.DeviceInfo
			out := *a
			return &out, nil
		}
		return nil, domain.ErrNotFound
	}
	f.auditLog.AppendFunc = func(ctx context.Context, e domain.AuditLogEntry) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.logs = append(s.logs, e)
		return nil
	}
	f.auditLog.ListByAgreementFunc = func(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		var out []domain.AuditLogEntry
		for i := len(s.logs) - 1; i >= 0; i-- {
			if s.logs[i].AgreementID == agreementID {
				out = append(out, s.logs[i])
			}
		}
		return out, nil
	}
}

func (s *memStore) agreement(id uuid.UUID) domain.Agreement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.agreements[id]
}

func (s *memStore) statusOf(agreementID, userID uuid.UUID) domain.AssignmentStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assignments {
		if a.AgreementID == agreementID && a.UserID == userID {
			return a.Status
		}
	}
	return ""
}

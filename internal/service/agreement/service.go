package agreement

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/pkg/ctxutil"
)

//go:generate moq -out agreement_repo_mock_test.go -pkg agreement . agreementRepo
type agreementRepo interface {
	Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	List(ctx context.Context, f domain.AgreementFilter) ([]domain.Agreement, error)
	Update(ctx context.Context, id uuid.UUID, p domain.AgreementUpdateParams) (*domain.Agreement, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.AgreementStatus) error
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

//go:generate moq -out assignment_repo_mock_test.go -pkg agreement . assignmentRepo
type assignmentRepo interface {
	Upsert(ctx context.Context, agreementID, userID uuid.UUID, role *string, deadline *time.Time) (*domain.Assignment, error)
	GetByAgreementAndUser(ctx context.Context, agreementID, userID uuid.UUID) (*domain.Assignment, error)
	ListByAgreement(ctx context.Context, agreementID uuid.UUID) ([]domain.Assignment, error)
	ListDetails(ctx context.Context, f domain.AssignmentFilter) ([]domain.AssignmentDetail, error)
	MarkSigned(ctx context.Context, id uuid.UUID, c domain.SignatureCapture) (*domain.Assignment, error)
}

//go:generate moq -out audit_log_mock_test.go -pkg agreement . auditLog
type auditLog interface {
	Append(ctx context.Context, e domain.AuditLogEntry) error
	ListByAgreement(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error)
}

//go:generate moq -out admin_audit_mock_test.go -pkg agreement . adminAuditLogger
type adminAuditLogger interface {
	Log(ctx context.Context, a domain.AdminAction) error
}

//go:generate moq -out user_repo_mock_test.go -pkg agreement . userRepo
type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

//go:generate moq -out tx_manager_mock_test.go -pkg agreement . txManager
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	AgreementSigned(completed bool)
	AgreementViewed()
	NotificationFailed(kind domain.NotificationKind)
}

// NotificationSender delivers agreement notices (email and in-app).
//
//go:generate moq -out notification_sender_mock_test.go -pkg agreement . NotificationSender
type NotificationSender interface {
	Send(ctx context.Context, notices ...domain.Notice) error
}

// SignedCopyStore archives the rendered export of a completed agreement.
//
//go:generate moq -out signed_copy_store_mock_test.go -pkg agreement . SignedCopyStore
type SignedCopyStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// Config holds the tunables of the agreement service.
type Config struct {
	// DispatchTimeout bounds one background notification dispatch.
	DispatchTimeout time.Duration
}

const (
	maxTitleLength     = 255
	maxURLLength       = 2048
	maxRoleLength      = 100
	maxSignatureLength = 10000
	maxDeviceLength    = 500
	maxTargets         = 500

	defaultDispatchTimeout = 30 * time.Second
)

// Service implements the agreement lifecycle: documents, assignments,
// signing, view tracking, audit reads and exports.
type Service struct {
	agreements  agreementRepo
	assignments assignmentRepo
	auditLog    auditLog
	adminAudit  adminAuditLogger
	users       userRepo
	tx          txManager
	notifier    NotificationSender
	copies      SignedCopyStore
	metrics     recorder
	cfg         Config
	log         *slog.Logger

	now func() time.Time
	wg  sync.WaitGroup
}

// NewService creates a new agreement service. copies may be nil, in which
// case completed agreements are not archived.
func NewService(
	log *slog.Logger,
	cfg Config,
	agreements agreementRepo,
	assignments assignmentRepo,
	auditLog auditLog,
	adminAudit adminAuditLogger,
	users userRepo,
	tx txManager,
	notifier NotificationSender,
	copies SignedCopyStore,
	metrics recorder,
) *Service {
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = defaultDispatchTimeout
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		agreements:  agreements,
		assignments: assignments,
		auditLog:    auditLog,
		adminAudit:  adminAudit,
		users:       users,
		tx:          tx,
		notifier:    notifier,
		copies:      copies,
		metrics:     metrics,
		cfg:         cfg,
		log:         log.With("service", "agreement"),
		now:         time.Now,
	}
}

// Wait blocks until every background dispatch started so far has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// background runs fn detached from the request: the request context's values
// are kept, its cancellation is not. Panics and errors are logged only.
func (s *Service) background(ctx context.Context, name string, fn func(ctx context.Context) error) {
	bgCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.log.ErrorContext(bgCtx, "background task panicked",
					slog.String("task", name),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()

		runCtx, cancel := context.WithTimeout(bgCtx, s.cfg.DispatchTimeout)
		defer cancel()

		if err := fn(runCtx); err != nil {
			s.log.WarnContext(runCtx, "background task failed",
				slog.String("task", name),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// notify dispatches notices without waiting for delivery.
func (s *Service) notify(ctx context.Context, notices []domain.Notice) {
	if s.notifier == nil || len(notices) == 0 {
		return
	}
	s.background(ctx, "notify", func(ctx context.Context) error {
		if err := s.notifier.Send(ctx, notices...); err != nil {
			s.metrics.NotificationFailed(notices[0].Kind)
			return fmt.Errorf("send %s notices: %w", notices[0].Kind, err)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Authorization
// ---------------------------------------------------------------------------

func callerID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

func requireSuperAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if !ctxutil.IsSuperAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

func requireReader(ctx context.Context) (uuid.UUID, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if !canRead(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

func canRead(ctx context.Context) bool {
	return domain.UserRole(ctxutil.UserRoleFromCtx(ctx)).CanReadAgreements()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

type nopRecorder struct{}

func (nopRecorder) AgreementSigned(bool) {}
func (nopRecorder) AgreementViewed() {}
func (nopRecorder) NotificationFailed(domain.NotificationKind) {}

// Package notification relays agreement notices to signers as in-app
// notifications and emails. Every email attempt is recorded in the email log.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

//go:generate moq -out notification_repo_mock_test.go -pkg notification . notificationRepo
type notificationRepo interface {
	Create(ctx context.Context, n domain.InAppNotification) error
}

//go:generate moq -out email_log_repo_mock_test.go -pkg notification . emailLogRepo
type emailLogRepo interface {
	Create(ctx context.Context, l domain.EmailLog) error
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

//go:generate moq -out mailer_mock_test.go -pkg notification . mailer
type mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// Config controls link building and fan-out.
type Config struct {
	// AgreementLink is the frontend page signers are sent to.
	AgreementLink string
	// Concurrency caps parallel deliveries per Send call.
	Concurrency int
}

// Service delivers agreement notices.
type Service struct {
	notifications notificationRepo
	emailLogs     emailLogRepo
	mailer        mailer
	cfg           Config
	log           *slog.Logger
	now           func() time.Time
}

// NewService creates a notification service. mailer may be nil, in which
// case only in-app notifications are written.
func NewService(
	log *slog.Logger,
	cfg Config,
	notifications notificationRepo,
	emailLogs emailLogRepo,
	mailer mailer,
) *Service {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Service{
		notifications: notifications,
		emailLogs:     emailLogs,
		mailer:        mailer,
		cfg:           cfg,
		log:           log.With("service", "notification"),
		now:           time.Now,
	}
}

// Send delivers every notice. One failing recipient does not stop the
// others; the returned error joins all failures.
func (s *Service) Send(ctx context.Context, notices ...domain.Notice) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(s.cfg.Concurrency)

	for _, n := range notices {
		g.Go(func() error {
			if err := s.deliver(ctx, n); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s to %s: %w", n.Kind, n.Recipient.ID, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (s *Service) deliver(ctx context.Context, n domain.Notice) error {
	msg, err := compose(n, s.cfg.AgreementLink)
	if err != nil {
		return err
	}

	var errs []error
	if n.Recipient.ID != uuid.Nil {
		if err := s.createInApp(ctx, n, msg); err != nil {
			errs = append(errs, err)
		}
	}
	if s.mailer != nil && n.Recipient.Email != "" {
		if err := s.sendEmail(ctx, n, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Service) createInApp(ctx context.Context, n domain.Notice, msg message) error {
	var link *string
	if s.cfg.AgreementLink != "" {
		link = &s.cfg.AgreementLink
	}
	err := s.notifications.Create(ctx, domain.InAppNotification{
		ID:        uuid.New(),
		UserID:    n.Recipient.ID,
		Type:      "agreement",
		Title:     msg.title,
		Message:   msg.summary,
		Link:      link,
		CreatedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("in-app notification: %w", err)
	}
	return nil
}

// sendEmail logs the attempt as pending, sends, then records the outcome.
// A failed log write is reported but never blocks delivery.
func (s *Service) sendEmail(ctx context.Context, n domain.Notice, msg message) error {
	logID := uuid.New()
	logged := true
	err := s.emailLogs.Create(ctx, domain.EmailLog{
		ID:      logID,
		Type:    n.Kind.String(),
		ToEmail: n.Recipient.Email,
		Subject: msg.subject,
		Status:  domain.EmailStatusPending,
		Metadata: map[string]any{
			"agreementId":    n.AgreementID.String(),
			"agreementTitle": n.AgreementTitle,
			"userId":         n.Recipient.ID.String(),
		},
		CreatedAt: s.now(),
	})
	if err != nil {
		logged = false
		s.log.WarnContext(ctx, "email log create failed",
			slog.String("to", n.Recipient.Email),
			slog.String("error", err.Error()),
		)
	}

	sendErr := s.mailer.Send(ctx, domain.EmailMessage{
		To:      n.Recipient.Email,
		ToName:  n.Recipient.Name,
		Subject: msg.subject,
		HTML:    msg.html,
		Text:    msg.text,
	})

	if logged {
		var markErr error
		if sendErr != nil {
			markErr = s.emailLogs.MarkFailed(ctx, logID, sendErr.Error())
		} else {
			markErr = s.emailLogs.MarkSent(ctx, logID, s.now())
		}
		if markErr != nil {
			s.log.WarnContext(ctx, "email log update failed",
				slog.String("email_log_id", logID.String()),
				slog.String("error", markErr.Error()),
			)
		}
	}

	if sendErr != nil {
		return fmt.Errorf("email: %w", sendErr)
	}
	s.log.InfoContext(ctx, "email sent",
		slog.String("type", n.Kind.String()),
		slog.String("agreement_id", n.AgreementID.String()),
		slog.String("email_log_id", logID.String()),
	)
	return nil
}

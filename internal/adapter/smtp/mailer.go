// Package smtp sends HTML email through an SMTP relay with retries.
package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/wneessen/go-mail"

	"github.com/heartmarshall/riseflow-agreements/internal/config"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer delivers domain.EmailMessage values.
type Mailer struct {
	client     sender
	from       string
	maxRetries uint64
	retryDelay time.Duration
	log        *slog.Logger
}

// New builds a Mailer from SMTP settings.
func New(cfg config.SMTPConfig, log *slog.Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(cfg.TLS)),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return newMailer(client, cfg, log), nil
}

func newMailer(client sender, cfg config.SMTPConfig, log *slog.Logger) *Mailer {
	return &Mailer{
		client:     client,
		from:       cfg.From,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		log:        log.With("adapter", "smtp"),
	}
}

// Send delivers one message. Transport errors are retried with exponential
// backoff; malformed addresses fail immediately.
func (m *Mailer) Send(ctx context.Context, e domain.EmailMessage) error {
	msg, err := m.build(e)
	if err != nil {
		return err
	}

	attempt := 0
	op := func() error {
		attempt++
		if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
			m.log.WarnContext(ctx, "smtp send attempt failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return err
		}
		return nil
	}

	if err := backoff.Retry(op, m.backoff(ctx)); err != nil {
		return fmt.Errorf("smtp send after %d attempts: %w", attempt, err)
	}
	return nil
}

func (m *Mailer) build(e domain.EmailMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("smtp from %q: %w", m.from, err)
	}
	if e.ToName != "" {
		if err := msg.AddToFormat(e.ToName, e.To); err != nil {
			return nil, fmt.Errorf("smtp to %q: %w", e.To, err)
		}
	} else if err := msg.To(e.To); err != nil {
		return nil, fmt.Errorf("smtp to %q: %w", e.To, err)
	}
	msg.Subject(e.Subject)

	if e.Text != "" {
		msg.SetBodyString(mail.TypeTextPlain, e.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, e.HTML)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, e.HTML)
	}
	return msg, nil
}

// backoff allows maxRetries attempts in total, doubling from retryDelay.
func (m *Mailer) backoff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = m.retryDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0

	retries := uint64(0)
	if m.maxRetries > 1 {
		retries = m.maxRetries - 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, retries), ctx)
}

func tlsPolicy(s string) mail.TLSPolicy {
	switch s {
	case "none":
		return mail.NoTLS
	case "mandatory":
		return mail.TLSMandatory
	default:
		return mail.TLSOpportunistic
	}
}

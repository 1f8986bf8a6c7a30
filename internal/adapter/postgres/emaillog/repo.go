// Package emaillog records outbound email attempts and their outcome.
package emaillog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

// Repo provides email log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new email log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a log row, normally in pending status.
func (r *Repo) Create(ctx context.Context, l domain.EmailLog) error {
	meta := l.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("email_log marshal metadata: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO email_logs (id, type, to_email, subject, status, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.Type, l.ToEmail, l.Subject, string(l.Status), metaJSON, l.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "email_log", l.ID)
	}
	return nil
}

// MarkSent records successful delivery.
func (r *Repo) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.setStatus(ctx, id, domain.EmailStatusSent, nil, &at)
}

// MarkFailed records the final delivery error.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return r.setStatus(ctx, id, domain.EmailStatusFailed, &reason, nil)
}

func (r *Repo) setStatus(ctx context.Context, id uuid.UUID, status domain.EmailStatus, reason *string, sentAt *time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE email_logs SET status = $2, error_message = $3, sent_at = $4 WHERE id = $1`,
		id, string(status), reason, sentAt,
	)
	if err != nil {
		return postgres.MapError(err, "email_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("email_log %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

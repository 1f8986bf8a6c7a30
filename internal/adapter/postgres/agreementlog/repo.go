// Package agreementlog implements the append-only agreement audit log.
package agreementlog

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
// There are no update or delete operations.
type Repo struct {
	db postgres.Querier
}

// New creates a new agreement audit log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append inserts a single audit entry.
func (r *Repo) Append(ctx context.Context, e domain.AuditLogEntry) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO agreement_audit_logs (id, agreement_id, assigned_agreement_id, user_id, action, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.AgreementID, e.AssignmentID, e.UserID, string(e.Action), e.IPAddress, e.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "agreement_audit_log", e.ID)
	}
	return nil
}

// ListByAgreement returns an agreement's audit trail, most recent first,
// with the acting user's name and email.
func (r *Repo) ListByAgreement(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error) {
	var rows []entryRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT l.id, l.agreement_id, l.assigned_agreement_id, l.user_id, l.action, l.ip_address, l.created_at,
		        u.name AS user_name, u.email AS user_email
		 FROM agreement_audit_logs l
		 JOIN users u ON u.id = l.user_id
		 WHERE l.agreement_id = $1
		 ORDER BY l.created_at DESC, l.id DESC`,
		agreementID,
	)
	if err != nil {
		return nil, fmt.Errorf("agreement_audit_log list %s: %w", agreementID, err)
	}

	out := make([]domain.AuditLogEntry, len(rows))
	for i, row := range rows {
		out[i] = domain.AuditLogEntry{
			ID:           row.ID,
			AgreementID:  row.AgreementID,
			AssignmentID: row.AssignmentID,
			UserID:       row.UserID,
			Action:       domain.AuditAction(row.Action),
			IPAddress:    row.IPAddress,
			CreatedAt:    row.CreatedAt,
			UserName:     row.UserName,
			UserEmail:    row.UserEmail,
		}
	}
	return out, nil
}

type entryRow struct {
	ID           uuid.UUID `db:"id"`
	AgreementID  uuid.UUID `db:"agreement_id"`
	AssignmentID uuid.UUID `db:"assigned_agreement_id"`
	UserID       uuid.UUID `db:"user_id"`
	Action       string    `db:"action"`
	IPAddress    *string   `db:"ip_address"`
	CreatedAt    time.Time `db:"created_at"`
	UserName     string    `db:"user_name"`
	UserEmail    string    `db:"user_email"`
}

// Package assignment implements the Assignment repository using PostgreSQL.
// One row exists per (agreement, user) pair.
package assignment

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

var columns = []string{
	"id", "agreement_id", "user_id", "status", "role", "deadline",
	"signed_at", "signature_url", "ip_address", "device_info", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new assignment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert creates a Pending assignment or, if the pair already exists,
// overwrites its deadline and role. Status and signature data are never touched.
func (r *Repo) Upsert(ctx context.Context, agreementID, userID uuid.UUID, role *string, deadline *time.Time) (*domain.Assignment, error) {
	query := `INSERT INTO assigned_agreements (agreement_id, user_id, role, deadline)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (agreement_id, user_id) DO UPDATE
		SET deadline = EXCLUDED.deadline, role = EXCLUDED.role, updated_at = now()
		` + returning

	var row assignmentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, agreementID, userID, role, deadline); err != nil {
		return nil, postgres.MapError(err, "assignment", pairKey(agreementID, userID))
	}
	return row.toDomain(), nil
}

// GetByAgreementAndUser returns the assignment for one (agreement, user) pair.
func (r *Repo) GetByAgreementAndUser(ctx context.Context, agreementID, userID uuid.UUID) (*domain.Assignment, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("assigned_agreements").
		Where(sq.Eq{"agreement_id": agreementID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("assignment build select: %w", err)
	}

	var row assignmentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "assignment", pairKey(agreementID, userID))
	}
	return row.toDomain(), nil
}

// ListByAgreement returns every assignment of an agreement, oldest first.
func (r *Repo) ListByAgreement(ctx context.Context, agreementID uuid.UUID) ([]domain.Assignment, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("assigned_agreements").
		Where(sq.Eq{"agreement_id": agreementID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("assignment build list: %w", err)
	}

	var rows []assignmentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("assignment list by agreement %s: %w", agreementID, err)
	}

	out := make([]domain.Assignment, len(rows))
	for i := range rows {
		out[i] = *rows[i].toDomain()
	}
	return out, nil
}

// ListDetails returns assignments joined with their agreement and signer,
// newest first. Used by the admin table, the signer's own list, the status
// view and exports.
func (r *Repo) ListDetails(ctx context.Context, f domain.AssignmentFilter) ([]domain.AssignmentDetail, error) {
	b := postgres.Builder.
		Select(
			"aa.id", "aa.agreement_id", "aa.user_id", "aa.status", "aa.role", "aa.deadline",
			"aa.signed_at", "aa.signature_url", "aa.ip_address", "aa.device_info",
			"aa.created_at", "aa.updated_at",
			"a.title AS agreement_title", "a.type AS agreement_type",
			"a.status AS agreement_status", "a.template_url",
			"u.name AS signer_name", "u.email AS signer_email",
		).
		From("assigned_agreements aa").
		Join("agreements a ON a.id = aa.agreement_id").
		Join("users u ON u.id = aa.user_id").
		OrderBy("aa.created_at DESC", "aa.id DESC")

	if f.AgreementID != nil {
		b = b.Where(sq.Eq{"aa.agreement_id": *f.AgreementID})
	}
	if f.UserID != nil {
		b = b.Where(sq.Eq{"aa.user_id": *f.UserID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"aa.status": string(*f.Status)})
	}
	if f.AgreementType != nil {
		b = b.Where(sq.Eq{"a.type": string(*f.AgreementType)})
	}
	if f.AgreementStatus != nil {
		b = b.Where(sq.Eq{"a.status": string(*f.AgreementStatus)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("assignment build details: %w", err)
	}

	var rows []detailRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("assignment list details: %w", err)
	}

	out := make([]domain.AssignmentDetail, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// MarkSigned transitions an assignment to Signed and stores the signature
// capture. The status guard makes a concurrent second sign return
// domain.ErrAlreadySigned instead of overwriting the first signature.
func (r *Repo) MarkSigned(ctx context.Context, id uuid.UUID, c domain.SignatureCapture) (*domain.Assignment, error) {
	query := `UPDATE assigned_agreements
		SET status = 'Signed', signed_at = $2, signature_url = $3, ip_address = $4, device_info = $5, updated_at = now()
		WHERE id = $1 AND status <> 'Signed'
		` + returning

	var rows []assignmentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query,
		id, c.SignedAt, c.Signature, c.IPAddress, c.DeviceInfo,
	); err != nil {
		return nil, postgres.MapError(err, "assignment", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("assignment %s: %w", id, domain.ErrAlreadySigned)
	}
	return rows[0].toDomain(), nil
}

// MarkOverdue sets Overdue on every Pending assignment whose deadline is
// before now. Returns the number of rows changed.
func (r *Repo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE assigned_agreements
		 SET status = 'Overdue', updated_at = now()
		 WHERE status = 'Pending' AND deadline IS NOT NULL AND deadline < $1`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("assignment mark overdue: %w", err)
	}
	return tag.RowsAffected(), nil
}

func pairKey(agreementID, userID uuid.UUID) string {
	return agreementID.String() + "/" + userID.String()
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type assignmentRow struct {
	ID           uuid.UUID  `db:"id"`
	AgreementID  uuid.UUID  `db:"agreement_id"`
	UserID       uuid.UUID  `db:"user_id"`
	Status       string     `db:"status"`
	Role         *string    `db:"role"`
	Deadline     *time.Time `db:"deadline"`
	SignedAt     *time.Time `db:"signed_at"`
	SignatureURL *string    `db:"signature_url"`
	IPAddress    *string    `db:"ip_address"`
	DeviceInfo   *string    `db:"device_info"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r assignmentRow) toDomain() *domain.Assignment {
	return &domain.Assignment{
		ID:          r.ID,
		AgreementID: r.AgreementID,
		UserID:      r.UserID,
		Status:      domain.AssignmentStatus(r.Status),
		Role:        r.Role,
		Deadline:    r.Deadline,
		SignedAt:    r.SignedAt,
		Signature:   r.SignatureURL,
		IPAddress:   r.IPAddress,
		DeviceInfo:  r.DeviceInfo,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type detailRow struct {
	assignmentRow
	AgreementTitle  string  `db:"agreement_title"`
	AgreementType   string  `db:"agreement_type"`
	AgreementStatus string  `db:"agreement_status"`
	TemplateURL     *string `db:"template_url"`
	SignerName      string  `db:"signer_name"`
	SignerEmail     string  `db:"signer_email"`
}

func (r detailRow) toDomain() domain.AssignmentDetail {
	return domain.AssignmentDetail{
		Assignment:      *r.assignmentRow.toDomain(),
		AgreementTitle:  r.AgreementTitle,
		AgreementType:   domain.AgreementType(r.AgreementType),
		AgreementStatus: domain.AgreementStatus(r.AgreementStatus),
		TemplateURL:     r.TemplateURL,
		SignerName:      r.SignerName,
		SignerEmail:     r.SignerEmail,
	}
}

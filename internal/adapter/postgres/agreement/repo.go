// Package agreement implements the Agreement repository using PostgreSQL.
package agreement

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

const table = "agreements"

var columns = []string{
	"id", "title", "type", "template_url", "content_html",
	"status", "version", "created_by", "created_at", "updated_at",
}

// Repo provides agreement persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new agreement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new agreement and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "title", "type", "template_url", "content_html", "status", "version", "created_by", "created_at", "updated_at").
		Values(a.ID, a.Title, string(a.Type), a.TemplateURL, a.ContentHTML, string(a.Status), a.Version, a.CreatedBy, a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("agreement build insert: %w", err)
	}

	var row agreementRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "agreement", a.ID)
	}
	return row.toDomain(), nil
}

// GetByID returns an agreement by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("agreement build select: %w", err)
	}

	var row agreementRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "agreement", id)
	}
	return row.toDomain(), nil
}

// GetForUpdate returns an agreement and locks its row until the surrounding
// transaction ends. Edits and signatures take this lock so the
// "locked once signed" check cannot race a concurrent signature.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("agreement build select for update: %w", err)
	}

	var row agreementRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "agreement", id)
	}
	return row.toDomain(), nil
}

// List returns agreements matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.AgreementFilter) ([]domain.Agreement, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if f.Type != nil {
		b = b.Where(sq.Eq{"type": string(*f.Type)})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": string(*f.Status)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("agreement build list: %w", err)
	}

	var rows []agreementRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("agreement list: %w", err)
	}

	out := make([]domain.Agreement, len(rows))
	for i := range rows {
		out[i] = *rows[i].toDomain()
	}
	return out, nil
}

// Update applies a partial update and returns the new row.
// A params value with no fields set only touches updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.AgreementUpdateParams) (*domain.Agreement, error) {
	b := postgres.Builder.
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Type != nil {
		b = b.Set("type", string(*p.Type))
	}
	if p.TemplateURL != nil {
		b = b.Set("template_url", *p.TemplateURL)
	}
	if p.ContentHTML != nil {
		b = b.Set("content_html", *p.ContentHTML)
	}
	if p.BumpVersion {
		b = b.Set("version", sq.Expr("version + 1"))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("agreement build update: %w", err)
	}

	var row agreementRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "agreement", id)
	}
	return row.toDomain(), nil
}

// SetStatus changes the document-level status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.AgreementStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE agreements SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return postgres.MapError(err, "agreement", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agreement %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkCompleted sets Completed unless the agreement already is. It reports
// whether this call made the change, so concurrent callers elect one winner.
func (r *Repo) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE agreements SET status = 'Completed', updated_at = now() WHERE id = $1 AND status <> 'Completed'`,
		id,
	)
	if err != nil {
		return false, postgres.MapError(err, "agreement", id)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes an agreement. Assignments and audit entries cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM agreements WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "agreement", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agreement %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type agreementRow struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Type        string     `db:"type"`
	TemplateURL *string    `db:"template_url"`
	ContentHTML *string    `db:"content_html"`
	Status      string     `db:"status"`
	Version     int        `db:"version"`
	CreatedBy   *uuid.UUID `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r agreementRow) toDomain() *domain.Agreement {
	return &domain.Agreement{
		ID:          r.ID,
		Title:       r.Title,
		Type:        domain.AgreementType(r.Type),
		TemplateURL: r.TemplateURL,
		ContentHTML: r.ContentHTML,
		Status:      domain.AgreementStatus(r.Status),
		Version:     r.Version,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

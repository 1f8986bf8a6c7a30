// Package adminaudit implements the platform-wide admin action log.
package adminaudit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

// Repo provides admin audit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new admin audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Log appends an admin action record.
func (r *Repo) Log(ctx context.Context, a domain.AdminAction) error {
	details := a.Details
	if details == nil {
		details = map[string]any{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("admin_audit_log marshal details: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO admin_audit_logs (id, admin_id, action_type, entity_type, entity_id, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.AdminID, a.ActionType, a.EntityType, a.EntityID, detailsJSON, a.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "admin_audit_log", a.ID)
	}
	return nil
}

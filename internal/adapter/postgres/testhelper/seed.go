package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the plain "user" role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedUserWithRole creates a user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "signer-" + suffix + "@example.com",
		Name:      "Signer " + suffix,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedAgreement creates a Pending NDA agreement with inline content.
func SeedAgreement(t *testing.T, pool *pgxpool.Pool, createdBy *uuid.UUID) domain.Agreement {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	content := "<p>Confidential</p>"
	a := domain.Agreement{
		ID:          uuid.New(),
		Title:       "NDA " + uniqueSuffix(),
		Type:        domain.AgreementTypeNDA,
		ContentHTML: &content,
		Status:      domain.AgreementStatusPending,
		Version:     1,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO agreements (id, title, type, content_html, status, version, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.Title, string(a.Type), a.ContentHTML, string(a.Status), a.Version, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAgreement: %v", err)
	}
	return a
}

// SeedAssignment assigns the user to the agreement in Pending status.
func SeedAssignment(t *testing.T, pool *pgxpool.Pool, agreementID, userID uuid.UUID) domain.Assignment {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	as := domain.Assignment{
		ID:          uuid.New(),
		AgreementID: agreementID,
		UserID:      userID,
		Status:      domain.AssignmentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO assigned_agreements (id, agreement_id, user_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		as.ID, as.AgreementID, as.UserID, string(as.Status), as.CreatedAt, as.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssignment: %v", err)
	}
	return as
}

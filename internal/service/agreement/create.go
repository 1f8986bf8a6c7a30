package agreement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

// Create adds a new Pending agreement at version 1.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Agreement, error) {
	userID, err := requireSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.create(ctx, userID, &domain.Agreement{
		Title:       strings.TrimSpace(input.Title),
		Type:        input.Type,
		TemplateURL: trimOrNil(input.TemplateURL),
		ContentHTML: trimOrNil(input.ContentHTML),
	})
}

func (s *Service) create(ctx context.Context, userID uuid.UUID, a *domain.Agreement) (*domain.Agreement, error) {
	now := s.now()
	a.ID = uuid.New()
	a.Status = domain.AgreementStatusPending
	a.Version = 1
	a.CreatedBy = &userID
	a.CreatedAt = now
	a.UpdatedAt = now

	created, err := s.agreements.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create agreement: %w", err)
	}

	s.log.InfoContext(ctx, "agreement created",
		slog.String("user_id", userID.String()),
		slog.String("agreement_id", created.ID.String()),
		slog.String("type", created.Type.String()),
	)
	return created, nil
}

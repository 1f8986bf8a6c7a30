package agreement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

// Update edits an agreement's metadata or content. Any edit is rejected with
// domain.ErrAgreementLocked once a signer has signed. Content and template
// changes bump the version.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Agreement, error) {
	userID, err := requireSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.AgreementUpdateParams{
		Type:        input.Type,
		TemplateURL: input.TemplateURL,
		ContentHTML: input.ContentHTML,
		BumpVersion: input.ContentHTML != nil || input.TemplateURL != nil,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.TemplateURL != nil {
		v := strings.TrimSpace(*input.TemplateURL)
		params.TemplateURL = &v
	}

	var updated *domain.Agreement
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The row lock serialises this check with Sign.
		if _, err := s.agreements.GetForUpdate(txCtx, input.AgreementID); err != nil {
			return fmt.Errorf("lock agreement: %w", err)
		}

		assignments, err := s.assignments.ListByAgreement(txCtx, input.AgreementID)
		if err != nil {
			return fmt.Errorf("list assignments: %w", err)
		}
		if domain.AnySigned(assignments) {
			return domain.ErrAgreementLocked
		}

		updated, err = s.agreements.Update(txCtx, input.AgreementID, params)
		if err != nil {
			return fmt.Errorf("update agreement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "agreement updated",
		slog.String("user_id", userID.String()),
		slog.String("agreement_id", updated.ID.String()),
		slog.Int("version", updated.Version),
	)
	return updated, nil
}

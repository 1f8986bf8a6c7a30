package agreement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes an agreement. Its assignments and audit entries are removed
// by the store's cascade.
func (s *Service) Delete(ctx context.Context, agreementID uuid.UUID) error {
	userID, err := requireSuperAdmin(ctx)
	if err != nil {
		return err
	}

	if err := s.agreements.Delete(ctx, agreementID); err != nil {
		return fmt.Errorf("delete agreement: %w", err)
	}

	s.log.InfoContext(ctx, "agreement deleted",
		slog.String("user_id", userID.String()),
		slog.String("agreement_id", agreementID.String()),
	)
	return nil
}

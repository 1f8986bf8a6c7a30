package agreement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/pkg/ctxutil"
)

// View returns the agreement for reading and appends a "viewed" audit
// entry. Only assigned users may view; statuses are not touched.
func (s *Service) View(ctx context.Context, agreementID uuid.UUID) (*domain.Agreement, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.agreements.GetByID(ctx, agreementID)
	if err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}

	assignment, err := s.assignmentFor(ctx, a.ID, userID)
	if err != nil {
		return nil, err
	}

	err = s.auditLog.Append(ctx, domain.AuditLogEntry{
		ID:           uuid.New(),
		AgreementID:  a.ID,
		AssignmentID: assignment.ID,
		UserID:       userID,
		Action:       domain.AuditActionViewed,
		IPAddress:    nonEmpty(ctxutil.ClientInfoFromCtx(ctx).IP),
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}
	s.metrics.AgreementViewed()

	s.log.DebugContext(ctx, "agreement viewed",
		slog.String("user_id", userID.String()),
		slog.String("agreement_id", a.ID.String()),
	)
	return a, nil
}

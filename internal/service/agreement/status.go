package agreement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

// Status returns the signing state of every signer of an agreement.
func (s *Service) Status(ctx context.Context, agreementID uuid.UUID) ([]domain.AssignmentDetail, error) {
	if _, err := requireReader(ctx); err != nil {
		return nil, err
	}
	a, err := s.agreements.GetByID(ctx, agreementID)
	if err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}

	details, err := s.assignments.ListDetails(ctx, domain.AssignmentFilter{AgreementID: &agreementID})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	s.settleWith(ctx, a, details)
	return details, nil
}

// Logs returns the agreement's audit trail, most recent first.
func (s *Service) Logs(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error) {
	if _, err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
	if _, err := s.agreements.GetByID(ctx, agreementID); err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}

	entries, err := s.auditLog.ListByAgreement(ctx, agreementID)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	return entries, nil
}

// ListAssigned returns the caller's own assignments, newest first.
func (s *Service) ListAssigned(ctx context.Context) ([]domain.AssignmentDetail, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	details, err := s.assignments.ListDetails(ctx, domain.AssignmentFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return details, nil
}

// ListAssignments returns the admin table of all assignments, newest first.
func (s *Service) ListAssignments(ctx context.Context, input AssignmentListInput) ([]domain.AssignmentDetail, error) {
	if _, err := requireReader(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	details, err := s.assignments.ListDetails(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return details, nil
}

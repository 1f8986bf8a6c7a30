package agreement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

// Get returns one agreement with its signers. A Pending agreement whose
// signers have all signed is completed on the way.
func (s *Service) Get(ctx context.Context, agreementID uuid.UUID) (*AgreementWithSigners, error) {
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

	return &AgreementWithSigners{Agreement: a, Assignments: details}, nil
}

// List returns agreements matching the optional type and status filters,
// newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Agreement, error) {
	if _, err := requireReader(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.agreements.List(ctx, domain.AgreementFilter{Type: input.Type, Status: input.Status})
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	return list, nil
}

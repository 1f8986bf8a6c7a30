package agreement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

// Assign targets one or more users with an agreement. Re-assigning an
// existing signer updates deadline and role in place. Each target gets a
// pending notice; delivery failures never fail the call.
//
// Adding a new signer to a Completed agreement reopens it.
func (s *Service) Assign(ctx context.Context, input AssignInput) ([]domain.Assignment, error) {
	userID, err := requireSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.agreements.GetByID(ctx, input.AgreementID)
	if err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}

	targets := input.targets()
	users, err := s.users.GetByIDs(ctx, targets)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	byID := make(map[uuid.UUID]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, id := range targets {
		if _, ok := byID[id]; !ok {
			return nil, domain.NewValidationError("user_ids", "unknown user "+id.String())
		}
	}

	assigned := make([]domain.Assignment, 0, len(targets))
	reopened := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, id := range targets {
			row, err := s.assignments.Upsert(txCtx, a.ID, id, input.roleFor(id), input.Deadline)
			if err != nil {
				return fmt.Errorf("upsert assignment: %w", err)
			}
			assigned = append(assigned, *row)
		}

		if a.Status != domain.AgreementStatusCompleted {
			return nil
		}
		all, err := s.assignments.ListByAgreement(txCtx, a.ID)
		if err != nil {
			return fmt.Errorf("list assignments: %w", err)
		}
		if domain.AllSigned(all) {
			return nil
		}
		if err := s.agreements.SetStatus(txCtx, a.ID, domain.AgreementStatusPending); err != nil {
			return fmt.Errorf("reopen agreement: %w", err)
		}
		reopened = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	notices := make([]domain.Notice, 0, len(targets))
	for _, id := range targets {
		notices = append(notices, domain.Notice{
			Kind:           domain.NotificationAgreementPending,
			Recipient:      byID[id],
			AgreementID:    a.ID,
			AgreementTitle: a.Title,
			Deadline:       input.Deadline,
		})
	}
	s.notify(ctx, notices)

	s.log.InfoContext(ctx, "agreement assigned",
		slog.String("user_id", userID.String()),
		slog.String("agreement_id", a.ID.String()),
		slog.Int("targets", len(targets)),
		slog.Bool("reopened", reopened),
	)
	return assigned, nil
}

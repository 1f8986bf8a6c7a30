package agreement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/pkg/ctxutil"
)

const signedCopyContentType = "text/html; charset=utf-8"

// Sign records the caller's signature. The assignment update and its
// "signed" audit entry commit together under the agreement row lock, so an
// edit cannot slip in beside a signature. Once committed the signature
// stands: the completion step that follows never fails the call. A
// completion that could not run is settled by the next Sign retry, Get or
// Status read.
func (s *Service) Sign(ctx context.Context, input SignInput) (*SignResult, error) {
	userID, err := callerID(ctx)
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

	assignment, err := s.assignmentFor(ctx, a.ID, userID)
	if err != nil {
		return nil, err
	}
	if assignment.IsSigned() {
		s.settle(ctx, a)
		return nil, domain.ErrAlreadySigned
	}

	client := ctxutil.ClientInfoFromCtx(ctx)
	capture := domain.SignatureCapture{
		SignedAt:   s.now(),
		Signature:  input.signature(),
		IPAddress:  nonEmpty(client.IP),
		DeviceInfo: deviceInfo(input.DeviceInfo, client.UserAgent),
	}

	var signed *domain.Assignment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.agreements.GetForUpdate(txCtx, a.ID); err != nil {
			return fmt.Errorf("lock agreement: %w", err)
		}

		var err error
		signed, err = s.assignments.MarkSigned(txCtx, assignment.ID, capture)
		if err != nil {
			return fmt.Errorf("mark signed: %w", err)
		}

		err = s.auditLog.Append(txCtx, domain.AuditLogEntry{
			ID:           uuid.New(),
			AgreementID:  a.ID,
			AssignmentID: assignment.ID,
			UserID:       userID,
			Action:       domain.AuditActionSigned,
			IPAddress:    capture.IPAddress,
			CreatedAt:    capture.SignedAt,
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordSignAction(ctx, userID, a.ID, assignment.ID, capture)

	allSigned, completer := false, false
	details, err := s.assignments.ListDetails(ctx, domain.AssignmentFilter{AgreementID: &a.ID})
	if err != nil {
		s.log.ErrorContext(ctx, "completion check failed after signing",
			slog.String("agreement_id", a.ID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		allSigned = allDetailsSigned(details)
		if allSigned {
			completer, err = s.complete(ctx, a, details)
			if err != nil {
				s.log.ErrorContext(ctx, "completion failed after signing",
					slog.String("agreement_id", a.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		} else {
			s.notify(ctx, noticesFor(domain.NotificationAgreementSigned, a, signerOnly(details, userID)))
		}
	}
	s.metrics.AgreementSigned(completer)

	s.log.InfoContext(ctx, "agreement signed",
		slog.String("user_id", userID.String()),
		slog.String("agreement_id", a.ID.String()),
		slog.String("assignment_id", assignment.ID.String()),
		slog.Bool("all_signed", allSigned),
	)

	return &SignResult{Assignment: signed, AllSigned: allSigned}, nil
}

// complete flips a fully signed agreement to Completed. The conditional
// write elects a single completer, which notifies every signer and archives
// the signed copy; everyone else gets false.
func (s *Service) complete(ctx context.Context, a *domain.Agreement, details []domain.AssignmentDetail) (bool, error) {
	won, err := s.agreements.MarkCompleted(ctx, a.ID)
	if err != nil {
		return false, fmt.Errorf("complete agreement: %w", err)
	}
	if !won {
		return false, nil
	}

	a.Status = domain.AgreementStatusCompleted
	s.notify(ctx, noticesFor(domain.NotificationAgreementCompleted, a, details))
	s.archive(ctx, a, details)
	return true, nil
}

// settle completes a Pending agreement whose signers have all signed but
// whose completion step never ran. It is best-effort and updates a in place
// when it succeeds.
func (s *Service) settle(ctx context.Context, a *domain.Agreement) {
	if a.Status != domain.AgreementStatusPending {
		return
	}
	details, err := s.assignments.ListDetails(ctx, domain.AssignmentFilter{AgreementID: &a.ID})
	if err != nil {
		s.log.WarnContext(ctx, "settle: list assignments",
			slog.String("agreement_id", a.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.settleWith(ctx, a, details)
}

func (s *Service) settleWith(ctx context.Context, a *domain.Agreement, details []domain.AssignmentDetail) {
	if a.Status != domain.AgreementStatusPending || !allDetailsSigned(details) {
		return
	}
	won, err := s.complete(ctx, a, details)
	if err != nil {
		s.log.WarnContext(ctx, "settle: complete agreement",
			slog.String("agreement_id", a.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if won {
		s.log.InfoContext(ctx, "agreement completion settled",
			slog.String("agreement_id", a.ID.String()),
		)
	}
	// Completed either by this call or by a concurrent one.
	a.Status = domain.AgreementStatusCompleted
}

// assignmentFor maps a missing assignment to domain.ErrNotAssigned.
func (s *Service) assignmentFor(ctx context.Context, agreementID, userID uuid.UUID) (*domain.Assignment, error) {
	assignment, err := s.assignments.GetByAgreementAndUser(ctx, agreementID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotAssigned
	}
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

// recordSignAction writes the platform-wide admin audit entry. Failures are
// logged only.
func (s *Service) recordSignAction(ctx context.Context, userID, agreementID, assignmentID uuid.UUID, c domain.SignatureCapture) {
	details := map[string]any{"agreementId": agreementID.String()}
	if c.IPAddress != nil {
		details["ipAddress"] = *c.IPAddress
	}
	if c.DeviceInfo != nil {
		details["deviceInfo"] = *c.DeviceInfo
	}

	err := s.adminAudit.Log(ctx, domain.AdminAction{
		ID:         uuid.New(),
		AdminID:    &userID,
		ActionType: "agreement_signed",
		EntityType: "agreement",
		EntityID:   &assignmentID,
		Details:    details,
		CreatedAt:  c.SignedAt,
	})
	if err != nil {
		s.log.WarnContext(ctx, "admin audit log failed",
			slog.String("agreement_id", agreementID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// archive stores the rendered export of a completed agreement in the
// background. No-op without a store.
func (s *Service) archive(ctx context.Context, a *domain.Agreement, details []domain.AssignmentDetail) {
	if s.copies == nil {
		return
	}
	exportedAt := s.now()
	s.background(ctx, "archive", func(ctx context.Context) error {
		body, err := renderExport(a, details, exportedAt)
		if err != nil {
			return fmt.Errorf("render signed copy: %w", err)
		}
		key := fmt.Sprintf("agreements/%s/v%d.html", a.ID, a.Version)
		if err := s.copies.Put(ctx, key, body, signedCopyContentType); err != nil {
			return fmt.Errorf("store signed copy %s: %w", key, err)
		}
		return nil
	})
}

func allDetailsSigned(details []domain.AssignmentDetail) bool {
	if len(details) == 0 {
		return false
	}
	for i := range details {
		if !details[i].IsSigned() {
			return false
		}
	}
	return true
}

func signerOnly(details []domain.AssignmentDetail, userID uuid.UUID) []domain.AssignmentDetail {
	for i := range details {
		if details[i].UserID == userID {
			return details[i : i+1]
		}
	}
	return nil
}

func noticesFor(kind domain.NotificationKind, a *domain.Agreement, details []domain.AssignmentDetail) []domain.Notice {
	out := make([]domain.Notice, 0, len(details))
	for _, d := range details {
		out = append(out, domain.Notice{
			Kind: kind,
			Recipient: domain.User{
				ID:    d.UserID,
				Email: d.SignerEmail,
				Name:  d.SignerName,
			},
			AgreementID:    a.ID,
			AgreementTitle: a.Title,
		})
	}
	return out
}

// deviceInfo prefers the client-supplied description over the user agent.
func deviceInfo(explicit *string, userAgent string) *string {
	if v := trimOrNil(explicit); v != nil {
		d := truncate(*v, maxDeviceLength)
		return &d
	}
	return nonEmpty(truncate(strings.TrimSpace(userAgent), maxDeviceLength))
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

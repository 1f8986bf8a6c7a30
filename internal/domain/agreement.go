package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agreement is a legal document definition that signers are assigned to.
type Agreement struct {
	ID          uuid.UUID
	Title       string
	Type        AgreementType
	TemplateURL *string
	ContentHTML *string
	Status      AgreementStatus
	Version     int
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AgreementUpdateParams holds a partial update. nil fields are left unchanged.
type AgreementUpdateParams struct {
	Title       *string
	Type        *AgreementType
	TemplateURL *string
	ContentHTML *string
	// BumpVersion increments the version counter in the same statement.
	BumpVersion bool
}

// Assignment links one Agreement to one signer and tracks that signer's progress.
type Assignment struct {
	ID          uuid.UUID
	AgreementID uuid.UUID
	UserID      uuid.UUID
	Status      AssignmentStatus
	Role        *string
	Deadline    *time.Time
	SignedAt    *time.Time
	Signature   *string
	IPAddress   *string
	DeviceInfo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsSigned reports whether the signer has completed the assignment.
func (a *Assignment) IsSigned() bool {
	return a.Status == AssignmentStatusSigned
}

// AssignmentDetail is an Assignment joined with its agreement and signer,
// used by listings, status views and exports.
type AssignmentDetail struct {
	Assignment
	AgreementTitle  string
	AgreementType   AgreementType
	AgreementStatus AgreementStatus
	TemplateURL     *string
	SignerName      string
	SignerEmail     string
}

// SignatureCapture holds the data stored on an assignment when it is signed.
type SignatureCapture struct {
	SignedAt   time.Time
	Signature  *string
	IPAddress  *string
	DeviceInfo *string
}

// AllSigned reports whether every assignment is Signed. It returns false for
// an empty slice: an agreement with no signers is never complete.
func AllSigned(assignments []Assignment) bool {
	if len(assignments) == 0 {
		return false
	}
	for i := range assignments {
		if !assignments[i].IsSigned() {
			return false
		}
	}
	return true
}

// AnySigned reports whether at least one assignment is Signed.
func AnySigned(assignments []Assignment) bool {
	for i := range assignments {
		if assignments[i].IsSigned() {
			return true
		}
	}
	return false
}

// AuditLogEntry is an immutable record of a signer action on an agreement.
type AuditLogEntry struct {
	ID           uuid.UUID
	AgreementID  uuid.UUID
	AssignmentID uuid.UUID
	UserID       uuid.UUID
	Action       AuditAction
	IPAddress    *string
	CreatedAt    time.Time

	// Populated on reads only.
	UserName  string
	UserEmail string
}

// AdminAction is a platform-wide audit trail record, written best-effort.
type AdminAction struct {
	ID         uuid.UUID
	AdminID    *uuid.UUID
	ActionType string
	EntityType string
	EntityID   *uuid.UUID
	Details    map[string]any
	CreatedAt  time.Time
}

package domain

import "github.com/google/uuid"

// AgreementFilter narrows agreement listings. nil fields are not applied.
type AgreementFilter struct {
	Type   *AgreementType
	Status *AgreementStatus
}

// AssignmentFilter narrows assignment listings. nil fields are not applied.
type AssignmentFilter struct {
	AgreementID     *uuid.UUID
	UserID          *uuid.UUID
	Status          *AssignmentStatus
	AgreementType   *AgreementType
	AgreementStatus *AgreementStatus
}

package domain

// AgreementType is the closed set of legal document kinds. It doubles as the
// template key for built-in content generation.
type AgreementType string

const (
	AgreementTypeNDA           AgreementType = "NDA"
	AgreementTypeMOU           AgreementType = "MOU"
	AgreementTypeCoFounder     AgreementType = "CoFounder"
	AgreementTypeTerms         AgreementType = "Terms"
	AgreementTypeFairTreatment AgreementType = "FairTreatment"
	AgreementTypeHireContract  AgreementType = "HireContract"
	AgreementTypePartnership   AgreementType = "Partnership"
	AgreementTypeInvestor      AgreementType = "Investor"
)

// AgreementTypes lists every valid AgreementType in display order.
var AgreementTypes = []AgreementType{
	AgreementTypeNDA,
	AgreementTypeMOU,
	AgreementTypeCoFounder,
	AgreementTypeTerms,
	AgreementTypeFairTreatment,
	AgreementTypeHireContract,
	AgreementTypePartnership,
	AgreementTypeInvestor,
}

func (t AgreementType) String() string { return string(t) }

func (t AgreementType) IsValid() bool {
	switch t {
	case AgreementTypeNDA, AgreementTypeMOU, AgreementTypeCoFounder, AgreementTypeTerms,
		AgreementTypeFairTreatment, AgreementTypeHireContract, AgreementTypePartnership,
		AgreementTypeInvestor:
		return true
	}
	return false
}

// AgreementStatus is the document-level status.
type AgreementStatus string

const (
	AgreementStatusPending   AgreementStatus = "Pending"
	AgreementStatusCompleted AgreementStatus = "Completed"
)

func (s AgreementStatus) String() string { return string(s) }

func (s AgreementStatus) IsValid() bool {
	switch s {
	case AgreementStatusPending, AgreementStatusCompleted:
		return true
	}
	return false
}

// AssignmentStatus is the per-signer status. Overdue is applied administratively
// and still permits signing.
type AssignmentStatus string

const (
	AssignmentStatusPending AssignmentStatus = "Pending"
	AssignmentStatusSigned  AssignmentStatus = "Signed"
	AssignmentStatusOverdue AssignmentStatus = "Overdue"
)

func (s AssignmentStatus) String() string { return string(s) }

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusSigned, AssignmentStatusOverdue:
		return true
	}
	return false
}

// AuditAction is the signer action recorded in the agreement audit log.
type AuditAction string

const (
	AuditActionViewed AuditAction = "viewed"
	AuditActionSigned AuditAction = "signed"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionViewed, AuditActionSigned:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser           UserRole = "user"
	UserRoleSuperAdmin     UserRole = "super_admin"
	UserRoleProjectManager UserRole = "project_manager"
	UserRoleFinanceAdmin   UserRole = "finance_admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleSuperAdmin, UserRoleProjectManager, UserRoleFinanceAdmin:
		return true
	}
	return false
}

// IsSuperAdmin reports whether the role may create, edit, assign and audit agreements.
func (r UserRole) IsSuperAdmin() bool {
	return r == UserRoleSuperAdmin
}

// CanReadAgreements reports whether the role may see admin listing views.
func (r UserRole) CanReadAgreements() bool {
	switch r {
	case UserRoleSuperAdmin, UserRoleProjectManager, UserRoleFinanceAdmin:
		return true
	}
	return false
}

// NotificationKind identifies a notice sent to a signer.
type NotificationKind string

const (
	NotificationAgreementPending   NotificationKind = "agreement_pending"
	NotificationAgreementSigned    NotificationKind = "agreement_signed"
	NotificationAgreementCompleted NotificationKind = "agreement_completed"
)

func (k NotificationKind) String() string { return string(k) }

// EmailStatus tracks the delivery state of an outbound email.
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

func (s EmailStatus) String() string { return string(s) }

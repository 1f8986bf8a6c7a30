package agreement

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/internal/service/agreement/templates"
)

// CreateInput holds the parameters for creating an agreement.
type CreateInput struct {
	Title       string
	Type        domain.AgreementType
	TemplateURL *string
	ContentHTML *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of " + typeList()})
	}
	errs = validateTemplateURL(errs, i.TemplateURL)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial update of an agreement. nil fields are left unchanged.
type UpdateInput struct {
	AgreementID uuid.UUID
	Title       *string
	Type        *domain.AgreementType
	TemplateURL *string
	ContentHTML *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	if i.Title == nil && i.Type == nil && i.TemplateURL == nil && i.ContentHTML == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of " + typeList()})
	}
	errs = validateTemplateURL(errs, i.TemplateURL)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FromTemplateInput holds the parameters for generating an agreement from a
// built-in template.
type FromTemplateInput struct {
	Type        domain.AgreementType
	Title       *string
	DynamicData map[string]string
}

// Validate checks all fields and collects all errors.
func (i FromTemplateInput) Validate() error {
	var errs []domain.FieldError

	if !templates.Has(i.Type) {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of " + typeList()})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) != "" {
		errs = validateTitle(errs, *i.Title)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssignInput targets one or more users. Roles resolve per user: an entry
// in RolesByUser wins, then Role, then no role.
type AssignInput struct {
	AgreementID uuid.UUID
	UserIDs     []uuid.UUID
	Deadline    *time.Time
	Role        *string
	RolesByUser map[uuid.UUID]string
}

// Validate checks all fields and collects all errors.
func (i AssignInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	if len(i.UserIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "user_ids", Message: "userId or userIds is required"})
	}
	if len(i.UserIDs) > maxTargets {
		errs = append(errs, domain.FieldError{Field: "user_ids", Message: "too many targets (max 500)"})
	}
	for _, id := range i.UserIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "user_ids", Message: "must not contain empty ids"})
			break
		}
	}
	if i.Role != nil && len(*i.Role) > maxRoleLength {
		errs = append(errs, domain.FieldError{Field: "role", Message: "max 100 characters"})
	}
	for _, role := range i.RolesByUser {
		if len(role) > maxRoleLength {
			errs = append(errs, domain.FieldError{Field: "roles", Message: "max 100 characters"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// targets returns UserIDs without duplicates, in first-seen order.
func (i AssignInput) targets() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(i.UserIDs))
	out := make([]uuid.UUID, 0, len(i.UserIDs))
	for _, id := range i.UserIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// roleFor resolves the role label for one target.
func (i AssignInput) roleFor(userID uuid.UUID) *string {
	if role, ok := i.RolesByUser[userID]; ok {
		if r := trimOrNil(&role); r != nil {
			return r
		}
	}
	return trimOrNil(i.Role)
}

// SignInput holds the signer's submission. SignatureURL wins over
// SignatureText when both are set.
type SignInput struct {
	AgreementID   uuid.UUID
	SignatureText *string
	SignatureURL  *string
	DeviceInfo    *string
}

// Validate checks all fields and collects all errors.
func (i SignInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	sig := i.signature()
	if sig == nil {
		errs = append(errs, domain.FieldError{Field: "signature", Message: "signatureText or signatureUrl is required"})
	} else if len(*sig) > maxSignatureLength {
		errs = append(errs, domain.FieldError{Field: "signature", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i SignInput) signature() *string {
	if u := trimOrNil(i.SignatureURL); u != nil {
		return u
	}
	return trimOrNil(i.SignatureText)
}

// AssignmentListInput filters the admin assignments table.
type AssignmentListInput struct {
	Status          *domain.AssignmentStatus
	AgreementType   *domain.AgreementType
	AgreementStatus *domain.AgreementStatus
}

// Validate checks all fields and collects all errors.
func (i AssignmentListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be Pending, Signed or Overdue"})
	}
	if i.AgreementType != nil && !i.AgreementType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of " + typeList()})
	}
	if i.AgreementStatus != nil && !i.AgreementStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "documentStatus", Message: "must be Pending or Completed"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AssignmentListInput) filter() domain.AssignmentFilter {
	return domain.AssignmentFilter{
		Status:          i.Status,
		AgreementType:   i.AgreementType,
		AgreementStatus: i.AgreementStatus,
	}
}

// ListInput filters the agreements list.
type ListInput struct {
	Type   *domain.AgreementType
	Status *domain.AgreementStatus
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of " + typeList()})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be Pending or Completed"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(t) > maxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	return errs
}

func validateTemplateURL(errs []domain.FieldError, raw *string) []domain.FieldError {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return errs
	}
	v := strings.TrimSpace(*raw)
	if len(v) > maxURLLength {
		return append(errs, domain.FieldError{Field: "templateUrl", Message: "max 2048 characters"})
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return append(errs, domain.FieldError{Field: "templateUrl", Message: "must be an absolute http(s) URL"})
	}
	return errs
}

func typeList() string {
	names := make([]string, len(domain.AgreementTypes))
	for i, t := range domain.AgreementTypes {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

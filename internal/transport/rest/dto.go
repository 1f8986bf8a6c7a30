package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

type agreementRequest struct {
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	TemplateURL *string `json:"templateUrl"`
	ContentHTML *string `json:"contentHtml"`
}

type agreementPatchRequest struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	TemplateURL *string `json:"templateUrl"`
	ContentHTML *string `json:"contentHtml"`
}

type fromTemplateRequest struct {
	Type        string            `json:"type"`
	Title       *string           `json:"title"`
	DynamicData map[string]string `json:"dynamicData"`
}

// assignRequest accepts roles either as one label for every target or as
// a userId → label object.
type assignRequest struct {
	UserID   *string         `json:"userId"`
	UserIDs  []string        `json:"userIds"`
	Deadline *string         `json:"deadline"`
	Role     *string         `json:"role"`
	Roles    json.RawMessage `json:"roles"`
}

type signRequest struct {
	SignatureText *string `json:"signatureText"`
	SignatureURL  *string `json:"signatureUrl"`
	DeviceInfo    *string `json:"deviceInfo"`
}

type agreementResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	TemplateURL *string    `json:"templateUrl"`
	ContentHTML *string    `json:"contentHtml"`
	Status      string     `json:"status"`
	Version     int        `json:"version"`
	CreatedBy   *uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type agreementWithSignersResponse struct {
	agreementResponse
	Assignments []assignmentDetailResponse `json:"assignments"`
}

type assignmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	AgreementID uuid.UUID  `json:"agreementId"`
	UserID      uuid.UUID  `json:"userId"`
	Status      string     `json:"status"`
	Role        *string    `json:"role"`
	Deadline    *time.Time `json:"deadline"`
	SignedAt    *time.Time `json:"signedAt"`
	Signature   *string    `json:"signatureUrl"`
	IPAddress   *string    `json:"ipAddress"`
	DeviceInfo  *string    `json:"deviceInfo"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type agreementSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	TemplateURL *string   `json:"templateUrl"`
}

type userSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type assignmentDetailResponse struct {
	assignmentResponse
	Agreement agreementSummary `json:"agreement"`
	User      userSummary      `json:"user"`
}

type auditLogResponse struct {
	ID           uuid.UUID   `json:"id"`
	AgreementID  uuid.UUID   `json:"agreementId"`
	AssignmentID uuid.UUID   `json:"assignedAgreementId"`
	UserID       uuid.UUID   `json:"userId"`
	Action       string      `json:"action"`
	IPAddress    *string     `json:"ipAddress"`
	CreatedAt    time.Time   `json:"createdAt"`
	User         userSummary `json:"user"`
}

type signResponse struct {
	Message    string             `json:"message"`
	Assignment assignmentResponse `json:"assignment"`
	AllSigned  bool               `json:"allSigned"`
}

func toAgreementResponse(a *domain.Agreement) agreementResponse {
	return agreementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Type:        a.Type.String(),
		TemplateURL: a.TemplateURL,
		ContentHTML: a.ContentHTML,
		Status:      a.Status.String(),
		Version:     a.Version,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toAssignmentResponse(a *domain.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:          a.ID,
		AgreementID: a.AgreementID,
		UserID:      a.UserID,
		Status:      a.Status.String(),
		Role:        a.Role,
		Deadline:    a.Deadline,
		SignedAt:    a.SignedAt,
		Signature:   a.Signature,
		IPAddress:   a.IPAddress,
		DeviceInfo:  a.DeviceInfo,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toAssignmentDetails(details []domain.AssignmentDetail) []assignmentDetailResponse {
	out := make([]assignmentDetailResponse, len(details))
	for i := range details {
		d := &details[i]
		out[i] = assignmentDetailResponse{
			assignmentResponse: toAssignmentResponse(&d.Assignment),
			Agreement: agreementSummary{
				ID:          d.AgreementID,
				Title:       d.AgreementTitle,
				Type:        d.AgreementType.String(),
				Status:      d.AgreementStatus.String(),
				TemplateURL: d.TemplateURL,
			},
			User: userSummary{ID: d.UserID, Name: d.SignerName, Email: d.SignerEmail},
		}
	}
	return out
}

func toAuditLogs(entries []domain.AuditLogEntry) []auditLogResponse {
	out := make([]auditLogResponse, len(entries))
	for i, e := range entries {
		out[i] = auditLogResponse{
			ID:           e.ID,
			AgreementID:  e.AgreementID,
			AssignmentID: e.AssignmentID,
			UserID:       e.UserID,
			Action:       e.Action.String(),
			IPAddress:    e.IPAddress,
			CreatedAt:    e.CreatedAt,
			User:         userSummary{ID: e.UserID, Name: e.UserName, Email: e.UserEmail},
		}
	}
	return out
}

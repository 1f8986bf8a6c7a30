package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/internal/service/agreement"
	"github.com/heartmarshall/riseflow-agreements/internal/transport/middleware"
)

//go:generate moq -out agreement_service_mock_test.go -pkg rest . agreementService

type agreementService interface {
	Create(ctx context.Context, input agreement.CreateInput) (*domain.Agreement, error)
	CreateFromTemplate(ctx context.Context, input agreement.FromTemplateInput) (*domain.Agreement, error)
	Get(ctx context.Context, agreementID uuid.UUID) (*agreement.AgreementWithSigners, error)
	List(ctx context.Context, input agreement.ListInput) ([]domain.Agreement, error)
	Update(ctx context.Context, input agreement.UpdateInput) (*domain.Agreement, error)
	Delete(ctx context.Context, agreementID uuid.UUID) error
	Assign(ctx context.Context, input agreement.AssignInput) ([]domain.Assignment, error)
	ListAssigned(ctx context.Context) ([]domain.AssignmentDetail, error)
	ListAssignments(ctx context.Context, input agreement.AssignmentListInput) ([]domain.AssignmentDetail, error)
	View(ctx context.Context, agreementID uuid.UUID) (*domain.Agreement, error)
	Sign(ctx context.Context, input agreement.SignInput) (*agreement.SignResult, error)
	Status(ctx context.Context, agreementID uuid.UUID) ([]domain.AssignmentDetail, error)
	Logs(ctx context.Context, agreementID uuid.UUID) ([]domain.AuditLogEntry, error)
	ExportHTML(ctx context.Context, agreementID uuid.UUID) (*agreement.Export, error)
	ExportAssignments(ctx context.Context, input agreement.AssignmentListInput) (*agreement.Export, error)
}

const maxBodyBytes = 1 << 20

// AgreementHandler serves the /agreements REST endpoints.
type AgreementHandler struct {
	svc agreementService
	log *slog.Logger
}

// NewAgreementHandler creates an AgreementHandler.
func NewAgreementHandler(svc agreementService, logger *slog.Logger) *AgreementHandler {
	return &AgreementHandler{svc: svc, log: logger.With("handler", "agreement")}
}

// Limits holds optional per-route middleware for the signer endpoints.
type Limits struct {
	Sign middleware.Middleware
	View middleware.Middleware
}

// Register mounts every agreement route on mux. All routes require an
// authenticated caller; role checks happen in the service.
func (h *AgreementHandler) Register(mux *http.ServeMux, limits Limits) {
	auth := func(f http.HandlerFunc, extra ...middleware.Middleware) http.Handler {
		return middleware.Chain(append([]middleware.Middleware{middleware.RequireAuth}, extra...)...)(f)
	}

	mux.Handle("GET /agreements/assigned", auth(h.ListAssigned))
	mux.Handle("GET /agreements/assignments", auth(h.ListAssignments))
	mux.Handle("GET /agreements/assignments/export", auth(h.ExportAssignments))
	mux.Handle("POST /agreements/from-template", auth(h.CreateFromTemplate))

	mux.Handle("GET /agreements", auth(h.List))
	mux.Handle("POST /agreements", auth(h.Create))
	mux.Handle("GET /agreements/{id}", auth(h.Get))
	mux.Handle("PUT /agreements/{id}", auth(h.Update))
	mux.Handle("DELETE /agreements/{id}", auth(h.Delete))

	mux.Handle("POST /agreements/{id}/assign", auth(h.Assign))
	mux.Handle("GET /agreements/{id}/view", auth(h.View, limits.View))
	mux.Handle("POST /agreements/{id}/sign", auth(h.Sign, limits.Sign))
	mux.Handle("GET /agreements/{id}/status", auth(h.Status))
	mux.Handle("GET /agreements/{id}/logs", auth(h.Logs))
	mux.Handle("GET /agreements/{id}/export", auth(h.Export))
}

// List handles GET /agreements?type=&status=.
func (h *AgreementHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := agreement.ListInput{
		Type:   optional[domain.AgreementType](q.Get("type")),
		Status: optional[domain.AgreementStatus](q.Get("status")),
	}

	list, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]agreementResponse, len(list))
	for i := range list {
		out[i] = toAgreementResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /agreements/{id}.
func (h *AgreementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, agreementWithSignersResponse{
		agreementResponse: toAgreementResponse(res.Agreement),
		Assignments:       toAssignmentDetails(res.Assignments),
	})
}

// Create handles POST /agreements.
func (h *AgreementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req agreementRequest
	if !h.decode(w, r, &req) {
		return
	}

	a, err := h.svc.Create(r.Context(), agreement.CreateInput{
		Title:       req.Title,
		Type:        domain.AgreementType(req.Type),
		TemplateURL: req.TemplateURL,
		ContentHTML: req.ContentHTML,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAgreementResponse(a))
}

// CreateFromTemplate handles POST /agreements/from-template.
func (h *AgreementHandler) CreateFromTemplate(w http.ResponseWriter, r *http.Request) {
	var req fromTemplateRequest
	if !h.decode(w, r, &req) {
		return
	}

	a, err := h.svc.CreateFromTemplate(r.Context(), agreement.FromTemplateInput{
		Type:        domain.AgreementType(req.Type),
		Title:       req.Title,
		DynamicData: req.DynamicData,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAgreementResponse(a))
}

// Update handles PUT /agreements/{id}. Absent fields are left unchanged.
func (h *AgreementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req agreementPatchRequest
	if !h.decode(w, r, &req) {
		return
	}

	input := agreement.UpdateInput{
		AgreementID: id,
		Title:       req.Title,
		TemplateURL: req.TemplateURL,
		ContentHTML: req.ContentHTML,
	}
	if req.Type != nil {
		t := domain.AgreementType(*req.Type)
		input.Type = &t
	}

	a, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAgreementResponse(a))
}

// Delete handles DELETE /agreements/{id}.
func (h *AgreementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Assign handles POST /agreements/{id}/assign.
func (h *AgreementHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req assignRequest
	if !h.decode(w, r, &req) {
		return
	}

	input, err := req.toInput(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	assigned, err := h.svc.Assign(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]assignmentResponse, len(assigned))
	for i := range assigned {
		out[i] = toAssignmentResponse(&assigned[i])
	}
	writeJSON(w, http.StatusCreated, map[string]any{"assigned": out})
}

// ListAssigned handles GET /agreements/assigned.
func (h *AgreementHandler) ListAssigned(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAssigned(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentDetails(list))
}

// ListAssignments handles GET /agreements/assignments?status=&type=&documentStatus=.
func (h *AgreementHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAssignments(r.Context(), assignmentFilter(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentDetails(list))
}

// ExportAssignments handles GET /agreements/assignments/export.
func (h *AgreementHandler) ExportAssignments(w http.ResponseWriter, r *http.Request) {
	exp, err := h.svc.ExportAssignments(r.Context(), assignmentFilter(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeAttachment(w, exp)
}

// View handles GET /agreements/{id}/view.
func (h *AgreementHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	a, err := h.svc.View(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAgreementResponse(a))
}

// Sign handles POST /agreements/{id}/sign. Device info may come from the
// body or the X-Device-Info header; the body wins.
func (h *AgreementHandler) Sign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req signRequest
	if !h.decode(w, r, &req) {
		return
	}

	device := req.DeviceInfo
	if device == nil {
		if v := r.Header.Get("X-Device-Info"); v != "" {
			device = &v
		}
	}

	res, err := h.svc.Sign(r.Context(), agreement.SignInput{
		AgreementID:   id,
		SignatureText: req.SignatureText,
		SignatureURL:  req.SignatureURL,
		DeviceInfo:    device,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, signResponse{
		Message:    "Agreement signed successfully",
		Assignment: toAssignmentResponse(res.Assignment),
		AllSigned:  res.AllSigned,
	})
}

// Status handles GET /agreements/{id}/status.
func (h *AgreementHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	list, err := h.svc.Status(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentDetails(list))
}

// Logs handles GET /agreements/{id}/logs.
func (h *AgreementHandler) Logs(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.Logs(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditLogs(entries))
}

// Export handles GET /agreements/{id}/export.
func (h *AgreementHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	exp, err := h.svc.ExportHTML(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeAttachment(w, exp)
}

func (h *AgreementHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *AgreementHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		handleError(h.log, w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}

func (req assignRequest) toInput(agreementID uuid.UUID) (agreement.AssignInput, error) {
	input := agreement.AssignInput{AgreementID: agreementID, Role: req.Role}
	var errs []domain.FieldError

	raw := req.UserIDs
	if len(raw) == 0 && req.UserID != nil {
		raw = []string{*req.UserID}
	}
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "userIds", Message: fmt.Sprintf("invalid id %q", s)})
			continue
		}
		input.UserIDs = append(input.UserIDs, id)
	}

	if req.Deadline != nil && strings.TrimSpace(*req.Deadline) != "" {
		d, err := parseDeadline(*req.Deadline)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "deadline", Message: "must be an ISO 8601 date"})
		} else {
			input.Deadline = &d
		}
	}

	if len(req.Roles) > 0 && string(req.Roles) != "null" {
		var single string
		var perUser map[string]string
		switch {
		case json.Unmarshal(req.Roles, &single) == nil:
			if input.Role == nil {
				input.Role = &single
			}
		case json.Unmarshal(req.Roles, &perUser) == nil:
			input.RolesByUser = make(map[uuid.UUID]string, len(perUser))
			for k, v := range perUser {
				id, err := uuid.Parse(k)
				if err != nil {
					errs = append(errs, domain.FieldError{Field: "roles", Message: fmt.Sprintf("invalid id %q", k)})
					continue
				}
				input.RolesByUser[id] = v
			}
		default:
			errs = append(errs, domain.FieldError{Field: "roles", Message: "must be a string or an object keyed by user id"})
		}
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

func assignmentFilter(r *http.Request) agreement.AssignmentListInput {
	q := r.URL.Query()
	return agreement.AssignmentListInput{
		Status:          optional[domain.AssignmentStatus](q.Get("status")),
		AgreementType:   optional[domain.AgreementType](q.Get("type")),
		AgreementStatus: optional[domain.AgreementStatus](q.Get("documentStatus")),
	}
}

func optional[T ~string](v string) *T {
	if v == "" {
		return nil
	}
	t := T(v)
	return &t
}

func writeAttachment(w http.ResponseWriter, exp *agreement.Export) {
	w.Header().Set("Content-Type", exp.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": exp.Filename}))
	w.WriteHeader(http.StatusOK)
	w.Write(exp.Body) //nolint:errcheck
}

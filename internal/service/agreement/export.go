package agreement

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

const missingValue = "—"

// ExportHTML renders a self-contained HTML copy of an agreement with its
// signature table. Admin readers may export any agreement; other users only
// those assigned to them.
func (s *Service) ExportHTML(ctx context.Context, agreementID uuid.UUID) (*Export, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.agreements.GetByID(ctx, agreementID)
	if err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}
	if !canRead(ctx) {
		if _, err := s.assignmentFor(ctx, a.ID, userID); err != nil {
			return nil, err
		}
	}

	details, err := s.assignments.ListDetails(ctx, domain.AssignmentFilter{AgreementID: &a.ID})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	body, err := renderExport(a, details, s.now())
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename:    fmt.Sprintf("agreement-%s.html", a.ID),
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}

type exportRow struct {
	Name     string
	Email    string
	Role     string
	Status   string
	SignedAt string
	IP       string
}

type exportPage struct {
	Title       string
	Type        string
	Status      string
	Version     int
	Content     template.HTML
	TemplateURL string
	Rows        []exportRow
	ExportedAt  string
	Hash        string
}

// Signer fields are escaped by html/template. The document body is stored
// HTML authored by admins and is embedded as-is.
var exportTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 820px; margin: 2rem auto; color: #222; }
.meta { color: #666; font-size: 0.9rem; }
.document { border-top: 1px solid #ddd; border-bottom: 1px solid #ddd; padding: 1rem 0; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; font-size: 0.9rem; }
th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
th { background: #f4f4f4; }
footer { margin-top: 2rem; color: #666; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Type: {{.Type}} | Version {{.Version}} | Status: {{.Status}}</p>
<section class="document">
{{- if .Content}}
{{.Content}}
{{- else}}
<p><em>This agreement has no inline content{{with .TemplateURL}}. Template: <a href="{{.}}">{{.}}</a>{{end}}.</em></p>
{{- end}}
</section>
<h2>Signatures</h2>
<table>
<thead><tr><th>Signer</th><th>Email</th><th>Role</th><th>Status</th><th>Signed at</th><th>IP address</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.Role}}</td><td>{{.Status}}</td><td>{{.SignedAt}}</td><td>{{.IP}}</td></tr>
{{- else}}
<tr><td colspan="6">No signers assigned.</td></tr>
{{- end}}
</tbody>
</table>
<footer>
<p>Exported {{.ExportedAt}}</p>
{{- with .Hash}}
<p>Document SHA-256: {{.}}</p>
{{- end}}
</footer>
</body>
</html>
`))

func renderExport(a *domain.Agreement, details []domain.AssignmentDetail, exportedAt time.Time) ([]byte, error) {
	page := exportPage{
		Title:      a.Title,
		Type:       a.Type.String(),
		Status:     a.Status.String(),
		Version:    a.Version,
		Rows:       make([]exportRow, 0, len(details)),
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		Hash:       documentHash(a),
	}
	if a.ContentHTML != nil && *a.ContentHTML != "" {
		page.Content = template.HTML(*a.ContentHTML) //nolint:gosec // admin-authored document body
	}
	if a.TemplateURL != nil {
		page.TemplateURL = *a.TemplateURL
	}

	for _, d := range details {
		row := exportRow{
			Name:     orMissing(d.SignerName),
			Email:    orMissing(d.SignerEmail),
			Role:     missingValue,
			Status:   d.Status.String(),
			SignedAt: missingValue,
			IP:       missingValue,
		}
		if d.Role != nil {
			row.Role = orMissing(*d.Role)
		}
		if d.SignedAt != nil {
			row.SignedAt = d.SignedAt.UTC().Format(time.RFC3339)
		}
		if d.IPAddress != nil {
			row.IP = orMissing(*d.IPAddress)
		}
		page.Rows = append(page.Rows, row)
	}

	var buf bytes.Buffer
	if err := exportTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}
	return buf.Bytes(), nil
}

// documentHash fingerprints the signed document body (or its template
// reference). Empty when neither is set.
func documentHash(a *domain.Agreement) string {
	var src string
	switch {
	case a.ContentHTML != nil && *a.ContentHTML != "":
		src = *a.ContentHTML
	case a.TemplateURL != nil && *a.TemplateURL != "":
		src = *a.TemplateURL
	default:
		return ""
	}
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}

package agreement

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
)

const assignmentsSheet = "Assignments"

var assignmentColumns = []struct {
	header string
	width  float64
}{
	{"Agreement", 36},
	{"Type", 14},
	{"Document status", 16},
	{"Signer", 24},
	{"Email", 30},
	{"Role", 18},
	{"Status", 12},
	{"Deadline", 14},
	{"Signed at", 22},
	{"IP address", 18},
}

// ExportAssignments renders the admin assignments table as an .xlsx workbook.
func (s *Service) ExportAssignments(ctx context.Context, input AssignmentListInput) (*Export, error) {
	details, err := s.ListAssignments(ctx, input)
	if err != nil {
		return nil, err
	}

	body, err := renderAssignmentsWorkbook(details)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename:    fmt.Sprintf("assignments-%s.xlsx", s.now().UTC().Format("20060102-150405")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        body,
	}, nil
}

func renderAssignmentsWorkbook(details []domain.AssignmentDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), assignmentsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(assignmentColumns))
	for i, c := range assignmentColumns {
		header[i] = c.header
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(assignmentsSheet, col, col, c.width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}
	if err := f.SetSheetRow(assignmentsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(assignmentColumns))
	if err := f.SetCellStyle(assignmentsSheet, "A1", lastCol+"1", bold); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, d := range details {
		row := []any{
			d.AgreementTitle,
			d.AgreementType.String(),
			d.AgreementStatus.String(),
			d.SignerName,
			d.SignerEmail,
			deref(d.Role),
			d.Status.String(),
			formatTime(d.Deadline, time.DateOnly),
			formatTime(d.SignedAt, time.RFC3339),
			deref(d.IPAddress),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(assignmentsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(layout)
}

package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lucabaldini/labgroups/types"
)

// Headers are the report column names, matching the workbook the lab
// instructors receive.
var Headers = []string{"Nome", "Cognome", "Matricola", "email", "Gruppo"}

// XLSX renders the per-room-group reports into one workbook, one sheet per
// room-group (empty rooms included, so every sheet the instructors expect
// exists).
type XLSX struct {
	path string
}

var _ types.ReportSink = (*XLSX)(nil)

// NewXLSX creates a workbook report sink.
//
// Parameters:
//   - path: Output workbook path, overwritten if it exists
//
// Returns:
//   - *XLSX: Initialized sink
//
// Example:
//
//	sink := report.NewXLSX("lab1_assignments.xlsx")
//	err := alloc.WriteReports(ctx, sink)
func NewXLSX(path string) *XLSX {
	return &XLSX{path: path}
}

// WriteReports writes one sheet per room-group and saves the workbook.
//
// Parameters:
//   - ctx: Context for cancellation
//   - reports: Per-room reports, pre-sorted by (assigned group, surname)
//
// Returns:
//   - error: Workbook construction or save error
func (w *XLSX) WriteReports(ctx context.Context, reports []types.RoomReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, r := range reports {
		sheet := r.Room.String()
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %q: %w", sheet, err)
		}

		for i, header := range Headers {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				return fmt.Errorf("addressing header cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, header); err != nil {
				return fmt.Errorf("writing header to %q: %w", sheet, err)
			}
		}

		for i, s := range r.Students {
			row := i + 2
			values := []any{s.Name, s.Surname, int(s.Identifier), s.Email, s.Assigned.String()}
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return fmt.Errorf("addressing cell: %w", err)
				}
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return fmt.Errorf("writing row %d to %q: %w", row, sheet, err)
				}
			}
		}
	}

	// The default sheet excelize creates is not one of the reports.
	if len(reports) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("removing default sheet: %w", err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", w.path, err)
	}

	return nil
}

package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lucabaldini/labgroups/types"
)

// ColumnMap names the roster sheet columns. The defaults follow the Italian
// enrollment form the tool was built around; header localization is entirely
// an adapter concern, the core never sees these names.
type ColumnMap struct {
	// DisplayName is the form-generated display name column, used only for
	// the name-mismatch cross check. Optional: an empty mapping (or a
	// missing column) disables the check.
	DisplayName string `yaml:"displayName"`

	Name             string `yaml:"name"`
	Surname          string `yaml:"surname"`
	Identifier       string `yaml:"identifier"`
	Email            string `yaml:"email"`
	MacroGroup       string `yaml:"macroGroup"`
	CompanionName    string `yaml:"companionName"`
	CompanionSurname string `yaml:"companionSurname"`
	Notes            string `yaml:"notes"`
}

// DefaultColumnMap returns the Italian enrollment-form headers.
//
// Returns:
//   - ColumnMap: Default column naming
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		DisplayName:      "Name",
		Name:             "Nome",
		Surname:          "Cognome",
		Identifier:       "Numero di matricola",
		Email:            "Email",
		MacroGroup:       "Macro-gruppo",
		CompanionName:    "Nome compagno",
		CompanionSurname: "Cognome compagno",
		Notes:            "Note",
	}
}

// XLSXConfig configures the workbook source.
type XLSXConfig struct {
	// Path is the workbook file to read. Mandatory.
	Path string `yaml:"path"`

	// RosterSheet is the sheet holding the roster rows.
	// Empty selects the workbook's first sheet.
	RosterSheet string `yaml:"rosterSheet"`

	// OverrideSheet is the sheet holding the identifier -> macro-group
	// override list. A workbook without this sheet simply has no overrides.
	// Default: "Cambi".
	OverrideSheet string `yaml:"overrideSheet"`

	// OverrideIdentifierColumn and OverrideGroupColumn name the override
	// sheet's columns. Defaults: "Matricola" and "Gruppo".
	OverrideIdentifierColumn string `yaml:"overrideIdentifierColumn"`
	OverrideGroupColumn      string `yaml:"overrideGroupColumn"`

	// Columns maps the roster sheet's localized headers.
	Columns ColumnMap `yaml:"columns"`
}

// setDefaults fills in missing configuration values.
func (c *XLSXConfig) setDefaults() {
	if c.OverrideSheet == "" {
		c.OverrideSheet = "Cambi"
	}
	if c.OverrideIdentifierColumn == "" {
		c.OverrideIdentifierColumn = "Matricola"
	}
	if c.OverrideGroupColumn == "" {
		c.OverrideGroupColumn = "Gruppo"
	}
	if (c.Columns == ColumnMap{}) {
		c.Columns = DefaultColumnMap()
	}
}

// XLSX reads roster rows and overrides from one enrollment workbook.
//
// The workbook is opened on every read: sources live for a single run and
// the roster fits one sheet, so there is nothing worth caching.
type XLSX struct {
	cfg XLSXConfig
}

var (
	_ types.RosterSource   = (*XLSX)(nil)
	_ types.OverrideSource = (*XLSX)(nil)
)

// NewXLSX creates a workbook source.
//
// Parameters:
//   - cfg: Workbook configuration (defaults applied for empty fields)
//
// Returns:
//   - *XLSX: Initialized source
//   - error: Configuration error (missing path)
//
// Example:
//
//	src, err := source.NewXLSX(source.XLSXConfig{Path: "lab1_groups_edit.xlsx"})
//	if err != nil { /* handle */ }
//	alloc, err := labgroups.NewAllocator(&cfg, src, src)
func NewXLSX(cfg XLSXConfig) (*XLSX, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: workbook path is required", types.ErrInvalidConfig)
	}
	cfg.setDefaults()

	return &XLSX{cfg: cfg}, nil
}

// ListStudents reads the roster sheet into raw rows, in sheet order.
//
// The header row maps localized column names to fields; the Name, Surname,
// Identifier and MacroGroup columns are mandatory, everything else is
// optional and defaults to unset. Rows whose cells are all empty are skipped.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - []types.RawStudent: Raw roster rows
//   - error: Open, sheet or header error
func (x *XLSX) ListStudents(ctx context.Context) ([]types.RawStudent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(x.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", x.cfg.Path, err)
	}
	defer f.Close()

	sheet := x.cfg.RosterSheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, x.cfg.Path)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := headerIndex(rows[0])
	cols := x.cfg.Columns
	for _, required := range []string{cols.Name, cols.Surname, cols.Identifier, cols.MacroGroup} {
		if _, ok := header[required]; !ok {
			return nil, fmt.Errorf("%w: %q in sheet %q", ErrColumnMissing, required, sheet)
		}
	}

	students := make([]types.RawStudent, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}

		students = append(students, types.RawStudent{
			DisplayName:      cell(row, header, cols.DisplayName),
			Name:             cell(row, header, cols.Name),
			Surname:          cell(row, header, cols.Surname),
			Identifier:       cell(row, header, cols.Identifier),
			Email:            cell(row, header, cols.Email),
			MacroGroup:       cell(row, header, cols.MacroGroup),
			CompanionName:    cell(row, header, cols.CompanionName),
			CompanionSurname: cell(row, header, cols.CompanionSurname),
			Notes:            cell(row, header, cols.Notes),
		})
	}

	return students, nil
}

// ListOverrides reads the override sheet into the authoritative table.
//
// A workbook without the override sheet yields an empty table. Within the
// sheet, both columns are mandatory and every identifier must parse: the
// override list is a short, curated document and a malformed entry means it
// was edited by hand incorrectly.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - types.Overrides: Identifier -> macro-group table (may be empty)
//   - error: Open, header or identifier parse error
func (x *XLSX) ListOverrides(ctx context.Context) (types.Overrides, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(x.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", x.cfg.Path, err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(x.cfg.OverrideSheet); idx < 0 {
		return types.Overrides{}, nil
	}

	rows, err := f.GetRows(x.cfg.OverrideSheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", x.cfg.OverrideSheet, err)
	}
	if len(rows) == 0 {
		return types.Overrides{}, nil
	}

	header := headerIndex(rows[0])
	for _, required := range []string{x.cfg.OverrideIdentifierColumn, x.cfg.OverrideGroupColumn} {
		if _, ok := header[required]; !ok {
			return nil, fmt.Errorf("%w: %q in sheet %q", ErrColumnMissing, required, x.cfg.OverrideSheet)
		}
	}

	overrides := make(types.Overrides, len(rows)-1)
	for i, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}

		id, err := types.ParseIdentifier(cell(row, header, x.cfg.OverrideIdentifierColumn))
		if err != nil {
			return nil, fmt.Errorf("override row %d: %w", i+2, err)
		}
		overrides[id] = types.MacroGroup(cell(row, header, x.cfg.OverrideGroupColumn))
	}

	return overrides, nil
}

// headerIndex maps header cell values to their column position.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	return index
}

// cell extracts the named column's value from a row, tolerating both an
// unmapped column name and the short rows excelize produces when trailing
// cells are empty.
func cell(row []string, header map[string]int, column string) string {
	if column == "" {
		return ""
	}
	idx, ok := header[column]
	if !ok || idx >= len(row) {
		return ""
	}

	return row[idx]
}

// emptyRow reports whether every cell of the row is empty.
func emptyRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}

	return true
}

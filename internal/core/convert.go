package core

// convert.go turns raw tabular cells into Record fields.
//
// Source files are hand-edited spreadsheets more often than not, so the
// parsers accept the usual export artifacts: currency symbols, thousands
// separators, accounting negatives "(123)", Excel ="..." wrappers and
// fiscal years written as floats ("2023.0").

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// HeaderIndex maps column names (lowercase) to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Keys are lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = i
	}
	return idx
}

// Missing returns the required columns absent from the header.
func (h HeaderIndex) Missing() []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := h[strings.ToLower(col)]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// Check returns an error naming every required column absent from the header.
func (h HeaderIndex) Check() error {
	if missing := h.Missing(); len(missing) > 0 {
		return fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// cell returns the cleaned value of column col, or "" when the row is short.
func (h HeaderIndex) cell(row []string, col string) string {
	i, ok := h[strings.ToLower(col)]
	if !ok || i >= len(row) {
		return ""
	}
	return CleanCell(row[i])
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// whitespace, the Excel formula prefix (="...") and surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.TrimSpace(strings.Trim(s, `"'`))
}

// ParseAmount parses a monetary cell into a decimal.
// Handles currency symbols, thousands separators and accounting format
// (parentheses for negative). Empty input is a "required field" error.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = CleanCell(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("required field is empty")
	}
	raw := s

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return decimal.Zero, fmt.Errorf("invalid number %q", raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q: %w", raw, err)
	}
	return d, nil
}

// ParseFiscalYear parses a fiscal year cell. Integral floats such as
// "2023.0" are accepted because spreadsheet exports often produce them.
func ParseFiscalYear(s string) (int, error) {
	s = CleanCell(s)
	if s == "" {
		return 0, fmt.Errorf("required field %q is empty", ColumnFiscalYear)
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || d.Sign() <= 0 || d.GreaterThan(decimal.NewFromInt(9999)) {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return int(d.IntPart()), nil
}

// RecordFromRow builds a Record from a data row using header positions.
// Errors name the offending column; callers add the row number.
func RecordFromRow(row []string, idx HeaderIndex) (Record, error) {
	rec := Record{Company: idx.cell(row, ColumnCompany)}
	if rec.Company == "" {
		return Record{}, fmt.Errorf("required field %q is empty", ColumnCompany)
	}

	year, err := ParseFiscalYear(idx.cell(row, ColumnFiscalYear))
	if err != nil {
		return Record{}, err
	}
	rec.FiscalYear = year

	for _, m := range Metrics {
		v, err := ParseAmount(idx.cell(row, m.Label()))
		if err != nil {
			return Record{}, fmt.Errorf("%s: %w", m.Label(), err)
		}
		rec.set(m, v)
	}

	return rec, nil
}

// IsBlankRow reports whether every cell in row is empty after cleaning.
// Sources skip blank rows instead of failing on them.
func IsBlankRow(row []string) bool {
	for _, c := range row {
		if CleanCell(c) != "" {
			return false
		}
	}
	return true
}

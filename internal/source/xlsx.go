package source

import (
	"fmt"
	"io"

	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a dataset from an Excel workbook. An empty sheet name
// selects the first worksheet.
func LoadXLSX(path, sheet string) (*core.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return readWorkbook(path, f, sheet)
}

// ReadXLSX parses a workbook from r.
func ReadXLSX(name string, r io.Reader, sheet string) (*core.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid spreadsheet: %w", name, err)
	}
	defer f.Close()

	return readWorkbook(name, f, sheet)
}

func readWorkbook(name string, f *excelize.File, sheet string) (*core.Dataset, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: invalid spreadsheet: workbook has no sheets", name)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid spreadsheet: sheet %q: %w", name, sheet, err)
	}

	// Leading blank rows are common above the header in hand-made workbooks.
	for len(rows) > 0 && core.IsBlankRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, core.ErrEmptyDataset)
	}

	return buildDataset(fmt.Sprintf("%s[%s]", name, sheet), rows[0], rows[1:])
}

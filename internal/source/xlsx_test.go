package source

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newWorkbook writes rows to sheet starting at A1 and returns the file.
func newWorkbook(t *testing.T, sheet string, rows [][]any) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	return f
}

var workbookRows = [][]any{
	{"Company", "Fiscal Year", "Total Revenue", "Net Income", "Total Assets", "Total Liabilities", "Operating Cash Flow"},
	{"Acme", 2023, 10000, 500, 21000, 8500, 1500},
	{"Acme", 2022, 9000, 400, 20000, 8000, 1200},
	{"Bolt", 2023, "12,000", "-300", 5000, 4000, "(200)"},
}

func TestReadXLSX_FirstSheet(t *testing.T) {
	f := newWorkbook(t, "Sheet1", workbookRows)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	ds, err := ReadXLSX("upload.xlsx", bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)

	assert.Equal(t, "upload.xlsx[Sheet1]", ds.Source)
	assert.Equal(t, []string{"Acme", "Bolt"}, ds.Companies())

	r, ok := ds.Lookup("bolt", 2023)
	require.True(t, ok)
	assert.Equal(t, "12000", r.TotalRevenue.String())
	assert.Equal(t, "-200", r.OperatingCashFlow.String())

	a := core.NewResolver(ds, nil).Answer("Acme", 2023, core.QuestionNetIncomeChange)
	assert.Contains(t, a.Text, "increased by $100")
}

func TestLoadXLSX_NamedSheetWithLeadingBlankRows(t *testing.T) {
	rows := append([][]any{{""}, {nil}}, workbookRows...)
	f := newWorkbook(t, "Financials", rows)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	ds, err := LoadXLSX(path, "Financials")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestLoadXLSX_Errors(t *testing.T) {
	f := newWorkbook(t, "Sheet1", workbookRows)
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := LoadXLSX(path, "Missing")
	require.Error(t, err)
	assert.Equal(t, "FILE003", core.MapError(err).Code)

	_, err = ReadXLSX("junk.xlsx", bytes.NewReader([]byte("not a zip")), "")
	require.Error(t, err)
	assert.Equal(t, "FILE003", core.MapError(err).Code)

	empty := newWorkbook(t, "Sheet1", nil)
	buf, err := empty.WriteToBuffer()
	require.NoError(t, err)
	_, err = ReadXLSX("empty.xlsx", bytes.NewReader(buf.Bytes()), "")
	require.Error(t, err)
	assert.Equal(t, "DATA002", core.MapError(err).Code)
}

package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/finchat/internal/config"
	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Company,Fiscal Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Operating Cash Flow
Microsoft,2024,245122000000,88136000000,512163000000,243686000000,118548000000
Microsoft,2023,211915000000,72361000000,411976000000,205753000000,87582000000
Apple,2024,391035000000,93736000000,364980000000,308030000000,118254000000
Apple,2023,383285000000,96995000000,352583000000,290437000000,110543000000
Tesla,2024,97690000000,7091000000,122070000000,48390000000,14923000000
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "financials.csv", sampleCSV)

	ds, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, path, ds.Source)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, []string{"Apple", "Microsoft", "Tesla"}, ds.Companies())
	assert.Equal(t, []int{2024, 2023}, ds.Years("microsoft"))

	r, ok := ds.Lookup("APPLE", 2023)
	require.True(t, ok)
	assert.Equal(t, "96995000000", r.NetIncome.String())
}

func TestReadCSV_Quirks(t *testing.T) {
	content := "\ufeff company , FISCAL YEAR,Total Revenue,Net Income,Total Assets,Total Liabilities,Operating Cash Flow,Notes\n" +
		`"Acme, Inc.",2023.0,"$10,000",500,"21,000",8500,(1500),audited` + "\n" +
		",,,,,,,\n" +
		`Acme Inc,"=""2022""",9000,400,20000,8000,1200` + "\n"

	ds, err := ReadCSV("quirks.csv", strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	r, ok := ds.Lookup("acme, inc.", 2023)
	require.True(t, ok)
	assert.Equal(t, "10000", r.TotalRevenue.String())
	assert.Equal(t, "-1500", r.OperatingCashFlow.String())

	_, ok = ds.Lookup("Acme Inc", 2022)
	assert.True(t, ok)
}

func TestReadCSV_Errors(t *testing.T) {
	header := "Company,Fiscal Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Operating Cash Flow\n"

	tests := []struct {
		name     string
		content  string
		wantCode string
		wantText string
	}{
		{"empty file", "", "DATA002", ""},
		{"header only", header, "DATA002", ""},
		{"missing column", "Company,Fiscal Year,Total Revenue\nAcme,2023,1\n", "VAL004", "Net Income"},
		{"bad number", header + "Acme,2023,lots,1,1,1,1\n", "VAL002", "row 2"},
		{"empty metric", header + "Acme,2023,1,1,1,1,1\nAcme,2022,1,,1,1,1\n", "VAL003", "row 3"},
		{"bad year", header + "Acme,FY23,1,1,1,1,1\n", "VAL001", "row 2"},
		{"malformed quoting", header + "\"Acme,2023,1,1,1,1,1\n", "FILE002", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV("bad.csv", strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, core.MapError(err).Code, "error: %v", err)
			assert.Contains(t, err.Error(), tt.wantText)
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "FILE001", core.MapError(err).Code)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	cfg := config.DatasetConfig{
		Path:        writeFile(t, "financials.csv", sampleCSV),
		LoadTimeout: 5 * time.Second,
	}

	ds, err := Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())

	cfg.Path = writeFile(t, "financials.xlsx", sampleCSV)
	_, err = Load(context.Background(), cfg)
	require.Error(t, err, "csv bytes behind an .xlsx extension must not load")
}

func TestLoad_ReportsDuplicates(t *testing.T) {
	content := sampleCSV + "Tesla,2024,1,1,1,1,1\n"
	cfg := config.DatasetConfig{
		Path:        writeFile(t, "dups.csv", content),
		LoadTimeout: 5 * time.Second,
	}

	ds, err := Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Duplicates())

	r, ok := ds.Lookup("tesla", 2024)
	require.True(t, ok)
	assert.Equal(t, "97690000000", r.TotalRevenue.String())
}

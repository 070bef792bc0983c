package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/finchat/internal/core"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadCSV reads a comma-separated dataset file.
func LoadCSV(path string) (*core.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ReadCSV(path, f)
}

// ReadCSV parses CSV content from r. name labels the dataset and errors.
// A UTF-8 or UTF-16 byte order mark is honoured and stripped, which covers
// files saved by Excel on Windows.
func ReadCSV(name string, r io.Reader) (*core.Dataset, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, core.ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: invalid csv: %w", name, err)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: invalid csv: %w", name, err)
	}

	return buildDataset(name, header, rows)
}

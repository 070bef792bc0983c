// Package source loads the financial dataset once at startup.
//
// Three backends are supported: CSV files (the default), Excel workbooks
// (.xlsx) and a PostgreSQL table. All of them produce the same header plus
// rows shape, which is converted to records by core.RecordFromRow, so the
// cleaning and presence rules are identical regardless of origin.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/finchat/internal/config"
	"github.com/JonMunkholm/finchat/internal/core"
)

// Load reads the configured dataset. Any failure is fatal for the caller:
// there is no partial load and no retry.
func Load(ctx context.Context, cfg config.DatasetConfig) (*core.Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()

	start := time.Now()

	var (
		ds  *core.Dataset
		err error
	)
	switch {
	case cfg.UsesDatabase():
		ds, err = LoadPostgres(ctx, cfg.DatabaseURL, cfg.Table)
	case strings.EqualFold(filepath.Ext(cfg.Path), ".xlsx"):
		ds, err = LoadXLSX(cfg.Path, cfg.Sheet)
	default:
		ds, err = LoadCSV(cfg.Path)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("dataset loaded",
		"source", ds.Source,
		"load_id", ds.LoadID,
		"records", ds.Len(),
		"companies", len(ds.Companies()),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if n := ds.Duplicates(); n > 0 {
		slog.Warn("duplicate company/year rows ignored; first occurrence wins",
			"source", ds.Source,
			"duplicates", n,
		)
	}

	return ds, nil
}

// buildDataset converts a header and data rows into a Dataset.
// Row numbers in errors are 1-based and count the header as row 1.
func buildDataset(name string, header []string, rows [][]string) (*core.Dataset, error) {
	idx := core.MakeHeaderIndex(header)
	if err := idx.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	records := make([]core.Record, 0, len(rows))
	for i, row := range rows {
		if core.IsBlankRow(row) {
			continue
		}
		rec, err := core.RecordFromRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", name, i+2, err)
		}
		records = append(records, rec)
	}

	ds, err := core.NewDataset(name, records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ds, nil
}

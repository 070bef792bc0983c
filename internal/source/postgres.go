package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// columnSQL maps dataset headers to the table's snake_case columns.
// Numeric columns are cast to text so core.ParseAmount sees the same
// representation it gets from files and decimals keep full precision.
var columnSQL = []struct {
	header string
	expr   string
}{
	{core.ColumnCompany, "company"},
	{core.ColumnFiscalYear, "fiscal_year::text"},
	{core.ColumnTotalRevenue, "total_revenue::text"},
	{core.ColumnNetIncome, "net_income::text"},
	{core.ColumnTotalAssets, "total_assets::text"},
	{core.ColumnTotalLiabilities, "total_liabilities::text"},
	{core.ColumnOperatingCashFlow, "operating_cash_flow::text"},
}

// selectQuery builds the read query for table. The table name may be
// schema-qualified ("finance.records"); each part is quoted.
func selectQuery(table string) string {
	exprs := make([]string, len(columnSQL))
	for i, c := range columnSQL {
		exprs[i] = c.expr
	}
	ident := pgx.Identifier(strings.Split(table, "."))
	// Physical order keeps "first match wins" stable for duplicate keys.
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY ctid", strings.Join(exprs, ", "), ident.Sanitize())
}

// LoadPostgres reads every row of table. The pool lives only for the load.
func LoadPostgres(ctx context.Context, databaseURL, table string) (*core.Dataset, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect dataset database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping dataset database: %w", err)
	}

	return queryDataset(ctx, pool, table)
}

// querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryDataset(ctx context.Context, db querier, table string) (*core.Dataset, error) {
	rows, err := db.Query(ctx, selectQuery(table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	data, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) ([]string, error) {
		cells := make([]*string, len(columnSQL))
		dest := make([]any, len(columnSQL))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}

		out := make([]string, len(cells))
		for i, c := range cells {
			if c != nil {
				out[i] = *c
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}

	header := make([]string, len(columnSQL))
	for i, c := range columnSQL {
		header[i] = c.header
	}

	return buildDataset("postgres:"+table, header, data)
}

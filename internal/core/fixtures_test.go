package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// rec builds a record from whole-dollar amounts.
func rec(company string, year int, revenue, netIncome, assets, liabilities, cashFlow int64) Record {
	return Record{
		Company:           company,
		FiscalYear:        year,
		TotalRevenue:      decimal.NewFromInt(revenue),
		NetIncome:         decimal.NewFromInt(netIncome),
		TotalAssets:       decimal.NewFromInt(assets),
		TotalLiabilities:  decimal.NewFromInt(liabilities),
		OperatingCashFlow: decimal.NewFromInt(cashFlow),
	}
}

// fixtureRecords is a small multi-company dataset in deliberately unsorted order.
func fixtureRecords() []Record {
	return []Record{
		rec("Acme", 2022, 9000, 400, 20000, 8000, 1200),
		rec("Zenith Corp", 2021, 150000, -2500, 500000, 410000, 3000),
		rec("Acme", 2023, 10000, 500, 21000, 8500, 1500),
		rec("Bolt Motors", 2023, 81462000000, 14997000000, 106618000000, 43009000000, 13256000000),
		rec("Zenith Corp", 2023, 160000, -4000, 480000, 420000, -1000),
		rec("Acme", 2021, 8000, 650, 19000, 7900, 900),
		rec("Bolt Motors", 2022, 81462000000, 12556000000, 82338000000, 36440000000, 14724000000),
	}
}

func newFixtureDataset(t *testing.T) *Dataset {
	t.Helper()
	d, err := NewDataset("fixture", fixtureRecords())
	require.NoError(t, err)
	return d
}

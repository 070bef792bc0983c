package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JonMunkholm/finchat/internal/config"
	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/JonMunkholm/finchat/internal/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func rec(company string, year int, revenue, netIncome int64) core.Record {
	d := decimal.NewFromInt
	return core.Record{
		Company:           company,
		FiscalYear:        year,
		TotalRevenue:      d(revenue),
		NetIncome:         d(netIncome),
		TotalAssets:       d(revenue * 4),
		TotalLiabilities:  d(revenue * 2),
		OperatingCashFlow: d(netIncome + 50),
	}
}

func testDataset(t *testing.T) *core.Dataset {
	t.Helper()
	ds, err := core.NewDataset("test", []core.Record{
		rec("Acme", 2022, 1000, 400),
		rec("Acme", 2023, 1200, 500),
		rec("Zenith Corp", 2021, 5000, 900),
		rec("Zenith Corp", 2023, 5500, 700),
		rec("Bolt Motors", 2023, 300, -80),
	})
	require.NoError(t, err)
	return ds
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           0,
			RequestTimeout: 5 * time.Second,
		},
		Rate:     config.RateLimitConfig{Enabled: false, RequestsPerMinute: 120},
		Security: config.SecurityConfig{EnableCSP: true},
		Metrics:  config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// newTestServer builds a Server over the fixture dataset.
func newTestServer(t *testing.T) (*Server, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	ds := testDataset(t)
	m.SetDataset(ds)
	s := NewServer(testConfig(), core.NewResolver(ds, m), m)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s, m
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

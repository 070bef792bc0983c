package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAnswer(t *testing.T) {
	m := New()

	m.ObserveAnswer(core.QuestionTotalRevenue, core.StatusOK)
	m.ObserveAnswer(core.QuestionTotalRevenue, core.StatusOK)
	m.ObserveAnswer(core.Question("free text"), core.StatusInfo)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.answers.WithLabelValues("total-revenue", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.answers.WithLabelValues("unsupported", "info")))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/answer", 200, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/answer", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestObserveRequest_NonStandardMethods(t *testing.T) {
	m := New()

	for _, method := range []string{"FOO", "BAR", "get", "PROPFIND"} {
		m.ObserveRequest(method, "", 405, time.Millisecond)
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(m.requests.WithLabelValues("other", "unmatched", "405")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requests))
}

func TestSetDatasetAndHandler(t *testing.T) {
	m := New()

	one := decimal.NewFromInt(1)
	ds, err := core.NewDataset("test", []core.Record{
		{Company: "Acme", FiscalYear: 2023, TotalRevenue: one, NetIncome: one, TotalAssets: one, TotalLiabilities: one, OperatingCashFlow: one},
		{Company: "acme", FiscalYear: 2023, TotalRevenue: one, NetIncome: one, TotalAssets: one, TotalLiabilities: one, OperatingCashFlow: one},
	})
	require.NoError(t, err)
	m.SetDataset(ds)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.datasetRecords))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.datasetCompanies))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.datasetDups))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "finchat_dataset_records 2")
}

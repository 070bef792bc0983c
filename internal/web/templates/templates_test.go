package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/JonMunkholm/finchat/internal/chart"
	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/a-h/templ"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func sampleTrend() *chart.Trend {
	d := decimal.NewFromInt
	return chart.BuildTrend("Acme", []core.Record{
		{Company: "Acme", FiscalYear: 2023, TotalRevenue: d(1200), NetIncome: d(150), TotalAssets: d(5000), TotalLiabilities: d(2000), OperatingCashFlow: d(300)},
		{Company: "Acme", FiscalYear: 2022, TotalRevenue: d(1000), NetIncome: d(100), TotalAssets: d(4000), TotalLiabilities: d(1800), OperatingCashFlow: d(250)},
	})
}

func TestAnswerAlert_StatusClass(t *testing.T) {
	ok := render(t, AnswerAlert(core.Answer{Text: "The total revenue is $1,000.", Status: core.StatusOK}))
	assert.Contains(t, ok, "alert-ok")
	assert.Contains(t, ok, "The total revenue is $1,000.")

	info := render(t, AnswerAlert(core.Answer{Text: core.MsgDataNotFound, Status: core.StatusInfo}))
	assert.Contains(t, info, "alert-info")
}

func TestErrorAlert_EscapesText(t *testing.T) {
	out := render(t, ErrorAlert("<b>bad</b>", "retry", "VAL001"))
	assert.NotContains(t, out, "<b>bad</b>")
	assert.Contains(t, out, "&lt;b&gt;bad&lt;/b&gt;")
	assert.Contains(t, out, "Code: VAL001")
}

func TestLineChart(t *testing.T) {
	out := render(t, LineChart(sampleTrend(), chart.DefaultFrame))
	assert.Contains(t, out, "<svg")
	assert.Equal(t, len(core.Metrics), bytes.Count([]byte(out), []byte(`<polyline`)))
	assert.Contains(t, out, ">2022</text>")
	assert.Contains(t, out, ">2023</text>")
}

func TestBarChart(t *testing.T) {
	out := render(t, BarChart(sampleTrend(), chart.DefaultFrame))
	assert.Equal(t, 2*len(core.Metrics), bytes.Count([]byte(out), []byte(`class="bar"`)))
	assert.Contains(t, out, "Total Revenue 2023: $1,200")
}

func TestCharts_EmptyTrend(t *testing.T) {
	for _, c := range []templ.Component{LineChart(nil, chart.DefaultFrame), BarChart(&chart.Trend{}, chart.DefaultFrame)} {
		out := render(t, c)
		assert.Contains(t, out, NoDataNotice)
		assert.NotContains(t, out, "<svg")
	}
}

func TestDashboard(t *testing.T) {
	a := core.Answer{Text: "The total assets are $5,000.", Status: core.StatusOK}
	out := render(t, Dashboard(DashboardView{
		Companies: []Option{{Value: "Acme", Label: "Acme", Selected: true}, {Value: "Bolt", Label: "Bolt"}},
		Years:     YearOptions([]int{2023, 2022}, 2023),
		Questions: []Option{{Value: "q", Label: "What is the total revenue?"}},
		Company:   "Acme",
		Answer:    &a,
		Trend:     sampleTrend(),
		Frame:     chart.DefaultFrame,
	}))

	assert.Contains(t, out, "<title>Financial Chatbot Prototype</title>")
	assert.Contains(t, out, "<h1>Financial Chatbot Prototype</h1>")
	assert.Contains(t, out, "Welcome to the AI-powered financial assistant. Select a company, fiscal year, and ask a predefined question to get instant insights.")
	assert.Contains(t, out, "Filter Options")
	assert.Contains(t, out, ">Select a Company</label>")
	assert.Contains(t, out, ">Select a Fiscal Year</label>")
	assert.Contains(t, out, ">Ask a financial question:</label>")
	assert.Contains(t, out, `<select id="select-company" name="company" onchange="this.form.submit()">`)
	assert.Contains(t, out, `<option value="Acme" selected>Acme</option>`)
	assert.Contains(t, out, `<option value="2023" selected>2023</option>`)
	assert.Contains(t, out, "Chatbot Response")
	assert.Contains(t, out, "The total assets are $5,000.")
	assert.Contains(t, out, "Show Financial Trends Over Time")
	assert.Contains(t, out, "Metric Comparison (Bar Chart)")
}

func TestDashboard_NoAnswerNoData(t *testing.T) {
	out := render(t, Dashboard(DashboardView{Company: "Ghost", Frame: chart.DefaultFrame}))
	assert.NotContains(t, out, "Chatbot Response")
	assert.Contains(t, out, NoDataNotice)
	assert.NotContains(t, out, "Metric Comparison")
}

func TestDashboard_EscapesDatasetValues(t *testing.T) {
	name := `Acme "Q" <Co> & Sons`
	out := render(t, Dashboard(DashboardView{
		Companies: []Option{{Value: name, Label: name, Selected: true}},
		Company:   name,
		Frame:     chart.DefaultFrame,
	}))

	assert.NotContains(t, out, name)
	assert.Contains(t, out, `<option value="Acme &#34;Q&#34; &lt;Co&gt; &amp; Sons" selected>`)
	assert.Contains(t, out, "Financial Trends for Acme &#34;Q&#34; &lt;Co&gt; &amp; Sons")
}

func TestErrorPage(t *testing.T) {
	out := render(t, ErrorPage("Page not found", "Return to the dashboard", "ERR000"))
	assert.Contains(t, out, "<title>Financial Chatbot Prototype - Error</title>")
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, `<a href="/">`)
}

func TestYearOptions(t *testing.T) {
	opts := YearOptions([]int{2023, 2021}, 2021)
	require.Len(t, opts, 2)
	assert.False(t, opts[0].Selected)
	assert.True(t, opts[1].Selected)
	assert.Equal(t, "2021", opts[1].Label)
}

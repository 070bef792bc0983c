package core

import (
	"github.com/shopspring/decimal"
)

// Record is one company / fiscal-year row of financial metrics.
type Record struct {
	Company           string          `json:"company" validate:"required"`
	FiscalYear        int             `json:"fiscal_year" validate:"required"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	NetIncome         decimal.Decimal `json:"net_income"`
	TotalAssets       decimal.Decimal `json:"total_assets"`
	TotalLiabilities  decimal.Decimal `json:"total_liabilities"`
	OperatingCashFlow decimal.Decimal `json:"operating_cash_flow"`
}

// Metric identifies one of the numeric columns of a Record.
type Metric int

const (
	MetricTotalRevenue Metric = iota
	MetricNetIncome
	MetricTotalAssets
	MetricTotalLiabilities
	MetricOperatingCashFlow
)

// Metrics lists every metric in column order.
var Metrics = []Metric{
	MetricTotalRevenue,
	MetricNetIncome,
	MetricTotalAssets,
	MetricTotalLiabilities,
	MetricOperatingCashFlow,
}

// Column names as they appear in the source header row.
const (
	ColumnCompany           = "Company"
	ColumnFiscalYear        = "Fiscal Year"
	ColumnTotalRevenue      = "Total Revenue"
	ColumnNetIncome         = "Net Income"
	ColumnTotalAssets       = "Total Assets"
	ColumnTotalLiabilities  = "Total Liabilities"
	ColumnOperatingCashFlow = "Operating Cash Flow"
)

// RequiredColumns is the header set every dataset source must provide.
var RequiredColumns = []string{
	ColumnCompany,
	ColumnFiscalYear,
	ColumnTotalRevenue,
	ColumnNetIncome,
	ColumnTotalAssets,
	ColumnTotalLiabilities,
	ColumnOperatingCashFlow,
}

// Label returns the display label, which is also the source column name.
func (m Metric) Label() string {
	switch m {
	case MetricTotalRevenue:
		return ColumnTotalRevenue
	case MetricNetIncome:
		return ColumnNetIncome
	case MetricTotalAssets:
		return ColumnTotalAssets
	case MetricTotalLiabilities:
		return ColumnTotalLiabilities
	case MetricOperatingCashFlow:
		return ColumnOperatingCashFlow
	default:
		return "Unknown"
	}
}

// Key returns the snake_case identifier used in JSON and SQL.
func (m Metric) Key() string {
	switch m {
	case MetricTotalRevenue:
		return "total_revenue"
	case MetricNetIncome:
		return "net_income"
	case MetricTotalAssets:
		return "total_assets"
	case MetricTotalLiabilities:
		return "total_liabilities"
	case MetricOperatingCashFlow:
		return "operating_cash_flow"
	default:
		return "unknown"
	}
}

// Value returns the metric's value on r.
func (r Record) Value(m Metric) decimal.Decimal {
	switch m {
	case MetricTotalRevenue:
		return r.TotalRevenue
	case MetricNetIncome:
		return r.NetIncome
	case MetricTotalAssets:
		return r.TotalAssets
	case MetricTotalLiabilities:
		return r.TotalLiabilities
	case MetricOperatingCashFlow:
		return r.OperatingCashFlow
	default:
		return decimal.Zero
	}
}

// set assigns the metric's value on r.
func (r *Record) set(m Metric, v decimal.Decimal) {
	switch m {
	case MetricTotalRevenue:
		r.TotalRevenue = v
	case MetricNetIncome:
		r.NetIncome = v
	case MetricTotalAssets:
		r.TotalAssets = v
	case MetricTotalLiabilities:
		r.TotalLiabilities = v
	case MetricOperatingCashFlow:
		r.OperatingCashFlow = v
	}
}

// Question is the closed set of predefined questions the dashboard answers.
type Question string

const (
	QuestionTotalRevenue      Question = "total-revenue"
	QuestionNetIncomeChange   Question = "net-income-change"
	QuestionTotalAssets       Question = "total-assets"
	QuestionTotalLiabilities  Question = "total-liabilities"
	QuestionOperatingCashFlow Question = "operating-cash-flow"
)

// Questions lists the predefined questions in display order.
var Questions = []Question{
	QuestionTotalRevenue,
	QuestionNetIncomeChange,
	QuestionTotalAssets,
	QuestionTotalLiabilities,
	QuestionOperatingCashFlow,
}

// Prompt returns the wording shown in the question selector.
func (q Question) Prompt() string {
	switch q {
	case QuestionTotalRevenue:
		return "What is the total revenue?"
	case QuestionNetIncomeChange:
		return "How has net income changed over the last year?"
	case QuestionTotalAssets:
		return "What are the total assets?"
	case QuestionTotalLiabilities:
		return "What are the total liabilities?"
	case QuestionOperatingCashFlow:
		return "What is the operating cash flow?"
	default:
		return string(q)
	}
}

// Valid reports whether q is one of the predefined questions.
func (q Question) Valid() bool {
	for _, known := range Questions {
		if q == known {
			return true
		}
	}
	return false
}

// Status classifies an Answer for presentation.
type Status string

const (
	// StatusOK means the answer carries a figure from the dataset.
	StatusOK Status = "ok"
	// StatusInfo means the answer is one of the fixed informational messages.
	StatusInfo Status = "info"
)

// Answer is the resolver's reply to a (company, year, question) triple.
type Answer struct {
	Question Question `json:"question"`
	Text     string   `json:"text"`
	Status   Status   `json:"status"`
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	calls []Status
}

func (o *recordingObserver) ObserveAnswer(_ Question, s Status) {
	o.calls = append(o.calls, s)
}

func TestAnswer_TotalRevenueMatchesEveryRow(t *testing.T) {
	d := newFixtureDataset(t)
	r := NewResolver(d, nil)

	for _, row := range fixtureRecords() {
		a := r.Answer(row.Company, row.FiscalYear, QuestionTotalRevenue)
		assert.Equal(t, StatusOK, a.Status)
		assert.Equal(t, "The total revenue is "+FormatCurrency(row.TotalRevenue)+".", a.Text)
	}
}

func TestAnswer_Questions(t *testing.T) {
	r := NewResolver(newFixtureDataset(t), nil)

	tests := []struct {
		name     string
		company  string
		year     int
		question Question
		want     string
		status   Status
	}{
		{"revenue", "Acme", 2023, QuestionTotalRevenue, "The total revenue is $10,000.", StatusOK},
		{"net income increased", "Acme", 2023, QuestionNetIncomeChange,
			"The net income has increased by $100 compared to the previous year.", StatusOK},
		{"net income decreased", "Acme", 2022, QuestionNetIncomeChange,
			"The net income has decreased by $250 compared to the previous year.", StatusOK},
		{"large increase", "Bolt Motors", 2023, QuestionNetIncomeChange,
			"The net income has increased by $2,441,000,000 compared to the previous year.", StatusOK},
		{"no previous year", "Acme", 2021, QuestionNetIncomeChange, MsgNoPreviousYear, StatusInfo},
		{"gap year has no previous year", "Zenith Corp", 2023, QuestionNetIncomeChange, MsgNoPreviousYear, StatusInfo},
		{"assets", "Acme", 2023, QuestionTotalAssets, "The total assets are $21,000.", StatusOK},
		{"liabilities", "Acme", 2023, QuestionTotalLiabilities, "The total liabilities are $8,500.", StatusOK},
		{"cash flow", "Acme", 2023, QuestionOperatingCashFlow, "The operating cash flow is $1,500.", StatusOK},
		{"negative cash flow", "Zenith Corp", 2023, QuestionOperatingCashFlow, "The operating cash flow is -$1,000.", StatusOK},
		{"large values", "Bolt Motors", 2023, QuestionTotalAssets, "The total assets are $106,618,000,000.", StatusOK},
		{"unknown company", "Nobody", 2023, QuestionTotalRevenue, MsgDataNotFound, StatusInfo},
		{"unknown year", "Acme", 1999, QuestionTotalRevenue, MsgDataNotFound, StatusInfo},
		{"unsupported question", "Acme", 2023, Question("what-is-the-ceo-salary"), MsgUnsupportedQuestion, StatusInfo},
		{"empty question", "Acme", 2023, Question(""), MsgUnsupportedQuestion, StatusInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := r.Answer(tt.company, tt.year, tt.question)
			assert.Equal(t, tt.want, a.Text)
			assert.Equal(t, tt.status, a.Status)
			assert.Equal(t, tt.question, a.Question)
		})
	}
}

func TestAnswer_NetIncomeIncreaseOfHundred(t *testing.T) {
	d, err := NewDataset("acme", []Record{
		rec("Acme", 2023, 0, 500, 0, 0, 0),
		rec("Acme", 2022, 0, 400, 0, 0, 0),
	})
	require.NoError(t, err)

	a := NewResolver(d, nil).Answer("Acme", 2023, QuestionNetIncomeChange)
	assert.Contains(t, a.Text, "increased by $100")
}

func TestAnswer_NetIncomeTieIsIncrease(t *testing.T) {
	d, err := NewDataset("flat", []Record{
		rec("Flat", 2023, 0, 700, 0, 0, 0),
		rec("Flat", 2022, 0, 700, 0, 0, 0),
	})
	require.NoError(t, err)

	a := NewResolver(d, nil).Answer("flat", 2023, QuestionNetIncomeChange)
	assert.Equal(t, "The net income has increased by $0 compared to the previous year.", a.Text)
}

func TestAnswer_CaseInsensitive(t *testing.T) {
	r := NewResolver(newFixtureDataset(t), nil)

	for _, q := range Questions {
		assert.Equal(t, r.Answer("acme", 2023, q), r.Answer("ACME", 2023, q), "question %s", q)
	}
}

func TestAnswer_NotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	r := NewResolver(newFixtureDataset(t), obs)

	r.Answer("Acme", 2023, QuestionTotalRevenue)
	r.Answer("Nobody", 2023, QuestionTotalRevenue)

	assert.Equal(t, []Status{StatusOK, StatusInfo}, obs.calls)
}

func TestQuestions(t *testing.T) {
	require.Len(t, Questions, 5)
	assert.Equal(t, QuestionTotalRevenue, Questions[0])
	assert.Equal(t, QuestionOperatingCashFlow, Questions[4])

	for _, q := range Questions {
		assert.True(t, q.Valid())
		assert.NotEqual(t, string(q), q.Prompt())
	}
	assert.False(t, Question("nope").Valid())
	assert.Equal(t, "How has net income changed over the last year?", QuestionNetIncomeChange.Prompt())
}

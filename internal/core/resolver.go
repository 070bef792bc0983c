package core

import (
	"fmt"
)

// Fixed informational replies.
const (
	MsgDataNotFound        = "Sorry, data not found for that company and year."
	MsgNoPreviousYear      = "No previous year data available for comparison."
	MsgUnsupportedQuestion = "Sorry, I can only answer predefined questions."
)

// AnswerObserver is notified of every resolved answer.
type AnswerObserver interface {
	ObserveAnswer(q Question, status Status)
}

// Resolver maps (company, fiscal year, question) to an Answer using a Dataset.
type Resolver struct {
	dataset  *Dataset
	observer AnswerObserver
}

// NewResolver returns a resolver over d. observer may be nil.
func NewResolver(d *Dataset, observer AnswerObserver) *Resolver {
	return &Resolver{dataset: d, observer: observer}
}

// Dataset returns the dataset the resolver reads from.
func (r *Resolver) Dataset() *Dataset {
	return r.dataset
}

// Answer resolves a predefined question. It never fails: missing data and
// unknown questions produce an informational Answer instead of an error.
func (r *Resolver) Answer(company string, year int, q Question) Answer {
	a := r.resolve(company, year, q)
	if r.observer != nil {
		r.observer.ObserveAnswer(q, a.Status)
	}
	return a
}

func (r *Resolver) resolve(company string, year int, q Question) Answer {
	rec, ok := r.dataset.Lookup(company, year)
	if !ok {
		return info(q, MsgDataNotFound)
	}

	switch q {
	case QuestionTotalRevenue:
		return answered(q, fmt.Sprintf("The total revenue is %s.", FormatCurrency(rec.TotalRevenue)))

	case QuestionNetIncomeChange:
		prev, found := r.dataset.Lookup(company, year-1)
		if !found {
			return info(q, MsgNoPreviousYear)
		}
		change := rec.NetIncome.Sub(prev.NetIncome)
		direction := "increased"
		if change.IsNegative() {
			direction = "decreased"
		}
		return answered(q, fmt.Sprintf("The net income has %s by %s compared to the previous year.",
			direction, FormatCurrency(change.Abs())))

	case QuestionTotalAssets:
		return answered(q, fmt.Sprintf("The total assets are %s.", FormatCurrency(rec.TotalAssets)))

	case QuestionTotalLiabilities:
		return answered(q, fmt.Sprintf("The total liabilities are %s.", FormatCurrency(rec.TotalLiabilities)))

	case QuestionOperatingCashFlow:
		return answered(q, fmt.Sprintf("The operating cash flow is %s.", FormatCurrency(rec.OperatingCashFlow)))

	default:
		return info(q, MsgUnsupportedQuestion)
	}
}

func answered(q Question, text string) Answer {
	return Answer{Question: q, Text: text, Status: StatusOK}
}

func info(q Question, text string) Answer {
	return Answer{Question: q, Text: text, Status: StatusInfo}
}

package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/JonMunkholm/finchat/internal/core"
)

// Selection is the dashboard state carried in the query string.
// It is rebuilt from every request and never stored.
type Selection struct {
	// Company is the display name of the selected company, "" when the
	// dataset has no companies.
	Company string

	// Years are the fiscal years of Company, most recent first.
	Years []int
	Year  int

	Question core.Question

	// Asked is set by the explicit Ask submit; only then is an answer shown.
	Asked bool
}

// ParseSelection resolves query parameters against the dataset.
//
// An absent or unknown company falls back to the first company, an absent or
// unknown year to the company's most recent year, and an absent question to
// the first predefined question. A question that is present but not
// predefined is kept so the resolver can answer it with its fixed reply.
func ParseSelection(ds *core.Dataset, q url.Values) Selection {
	var sel Selection

	companies := ds.Companies()
	if name, ok := ds.DisplayName(q.Get("company")); ok {
		sel.Company = name
	} else if len(companies) > 0 {
		sel.Company = companies[0]
	}

	sel.Years = ds.Years(sel.Company)
	if len(sel.Years) > 0 {
		sel.Year = sel.Years[0]
	}
	if y, err := strconv.Atoi(strings.TrimSpace(q.Get("year"))); err == nil && ds.HasYear(sel.Company, y) {
		sel.Year = y
	}

	sel.Question = core.Questions[0]
	if raw := strings.TrimSpace(q.Get("question")); raw != "" {
		sel.Question = core.Question(raw)
	}

	sel.Asked = q.Has("ask")
	return sel
}

package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JonMunkholm/finchat/internal/chart"
	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// QuestionInfo is one predefined question.
type QuestionInfo struct {
	ID     core.Question `json:"id"`
	Prompt string        `json:"prompt"`
}

// YearsResponse lists a company's fiscal years, most recent first.
type YearsResponse struct {
	Company string `json:"company"`
	Years   []int  `json:"years"`
}

// answerQuery holds the /api/answer parameters.
type answerQuery struct {
	Company  string `json:"company" validate:"required"`
	Year     string `json:"year" validate:"required"`
	Question string `json:"question" validate:"required"`
}

// handleListQuestions returns the predefined questions in display order.
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	out := make([]QuestionInfo, len(core.Questions))
	for i, q := range core.Questions {
		out[i] = QuestionInfo{ID: q, Prompt: q.Prompt()}
	}
	render.JSON(w, r, out)
}

// handleListCompanies returns the distinct companies alphabetically.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dataset.Companies())
}

// handleListYears returns the fiscal years of one company.
func (s *Server) handleListYears(w http.ResponseWriter, r *http.Request) {
	name, ok := s.company(r)
	if !ok {
		s.respondError(w, r, fmt.Errorf("%w: %q", core.ErrCompanyNotFound, chi.URLParam(r, "company")), http.StatusNotFound)
		return
	}
	render.JSON(w, r, YearsResponse{Company: name, Years: s.dataset.Years(name)})
}

// handleAnswer resolves one question. Missing data and unknown questions are
// answered with an informational reply, not an error status.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := answerQuery{
		Company:  strings.TrimSpace(q.Get("company")),
		Year:     strings.TrimSpace(q.Get("year")),
		Question: strings.TrimSpace(q.Get("question")),
	}
	if err := core.Validator().Struct(in); err != nil {
		s.respondError(w, r, core.DescribeValidation(err), http.StatusBadRequest)
		return
	}

	year, err := strconv.Atoi(in.Year)
	if err != nil || year <= 0 {
		s.respondError(w, r, fmt.Errorf("invalid year %q", in.Year), http.StatusBadRequest)
		return
	}

	render.JSON(w, r, s.resolver.Answer(in.Company, year, core.Question(in.Question)))
}

// handleTrend returns the per-metric series used by the charts.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	name, ok := s.company(r)
	if !ok {
		s.respondError(w, r, fmt.Errorf("%w: %q", core.ErrCompanyNotFound, chi.URLParam(r, "company")), http.StatusNotFound)
		return
	}
	render.JSON(w, r, chart.BuildTrend(name, s.dataset.Series(name)))
}

// company resolves the {company} URL parameter to its display name.
func (s *Server) company(r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "company")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return s.dataset.DisplayName(raw)
}

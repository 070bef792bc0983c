package web

import (
	"net/http"
	"time"

	"github.com/JonMunkholm/finchat/internal/chart"
	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/JonMunkholm/finchat/internal/logging"
	"github.com/JonMunkholm/finchat/internal/web/templates"
	"github.com/go-chi/render"
)

// handleDashboard renders the main dashboard page for the query's selection.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sel := ParseSelection(s.dataset, r.URL.Query())

	view := templates.DashboardView{
		Companies: companyOptions(s.dataset.Companies(), sel.Company),
		Years:     templates.YearOptions(sel.Years, sel.Year),
		Questions: questionOptions(sel.Question),
		Company:   sel.Company,
		Trend:     chart.BuildTrend(sel.Company, s.dataset.Series(sel.Company)),
		Frame:     s.frame,
	}

	if sel.Asked {
		a := s.resolver.Answer(sel.Company, sel.Year, sel.Question)
		logging.WithFields(r.Context(), "company", sel.Company, "year", sel.Year).
			Debug("answered", "question", sel.Question, "status", a.Status)
		view.Answer = &a
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Dashboard(view).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render dashboard", "error", err)
	}
}

func companyOptions(companies []string, selected string) []templates.Option {
	opts := make([]templates.Option, len(companies))
	for i, c := range companies {
		opts[i] = templates.Option{Value: c, Label: c, Selected: c == selected}
	}
	return opts
}

func questionOptions(selected core.Question) []templates.Option {
	opts := make([]templates.Option, len(core.Questions))
	for i, q := range core.Questions {
		opts[i] = templates.Option{Value: string(q), Label: q.Prompt(), Selected: q == selected}
	}
	return opts
}

// HealthResponse describes the loaded dataset.
type HealthResponse struct {
	Status     string    `json:"status"`
	LoadID     string    `json:"load_id"`
	Source     string    `json:"source"`
	LoadedAt   time.Time `json:"loaded_at"`
	Records    int       `json:"records"`
	Companies  int       `json:"companies"`
	Duplicates int       `json:"duplicates"`
}

// handleHealth reports liveness together with dataset provenance.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:     "ok",
		LoadID:     s.dataset.LoadID.String(),
		Source:     s.dataset.Source,
		LoadedAt:   s.dataset.LoadedAt,
		Records:    s.dataset.Len(),
		Companies:  len(s.dataset.Companies()),
		Duplicates: s.dataset.Duplicates(),
	})
}

// Package templates holds the templ components of the dashboard.
// Edit the .templ files and run `templ generate`; the *_templ.go files are generated.
package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JonMunkholm/finchat/internal/chart"
	"github.com/JonMunkholm/finchat/internal/core"
)

// NoDataNotice is shown in place of charts when a company has no rows.
const NoDataNotice = "No historical data available to plot."

const yTickCount = 4

// Option is one entry of a select element.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// DashboardView is everything the dashboard page shows.
type DashboardView struct {
	Companies []Option
	Years     []Option
	Questions []Option

	// Company is the display name of the selected company.
	Company string

	// Answer is nil until the user asks a question.
	Answer *core.Answer

	Trend *chart.Trend
	Frame chart.Frame
}

// YearOptions builds year options in the given order, marking selected.
func YearOptions(years []int, selected int) []Option {
	opts := make([]Option, len(years))
	for i, y := range years {
		s := strconv.Itoa(y)
		opts[i] = Option{Value: s, Label: s, Selected: y == selected}
	}
	return opts
}

// num formats an SVG coordinate with one decimal place.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func viewBox(f chart.Frame) string {
	return "0 0 " + strconv.FormatFloat(f.Width, 'f', 0, 64) + " " + strconv.FormatFloat(f.Height, 'f', 0, 64)
}

// points renders a polyline's points attribute.
func points(ps []chart.Point) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(out, " ")
}

func barTitle(b chart.Bar) string {
	return fmt.Sprintf("%s %d: %s", b.Name, b.Year, b.Label)
}

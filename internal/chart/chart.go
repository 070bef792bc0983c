// Package chart turns a company's yearly records into trend series and
// computes the geometry for the dashboard's SVG line and grouped bar charts.
package chart

import (
	"fmt"
	"math"
	"slices"

	"github.com/JonMunkholm/finchat/internal/core"
	"github.com/shopspring/decimal"
)

// Default color palette for chart series, one per metric.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Series is one metric across the fiscal years of a Trend.
type Series struct {
	Metric string            `json:"metric"`
	Name   string            `json:"name"`
	Color  string            `json:"color"`
	Values []decimal.Decimal `json:"values"`
}

// Trend holds every metric of one company ordered by fiscal year ascending.
// Values[i] of each series belongs to Years[i].
type Trend struct {
	Company string   `json:"company"`
	Years   []int    `json:"years"`
	Series  []Series `json:"series"`
}

// BuildTrend builds a Trend from records of a single company, one per year.
// Records are sorted by fiscal year; the input slice is not modified.
func BuildTrend(company string, records []core.Record) *Trend {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b core.Record) int { return a.FiscalYear - b.FiscalYear })

	t := &Trend{
		Company: company,
		Years:   make([]int, len(sorted)),
		Series:  make([]Series, len(core.Metrics)),
	}
	for i, r := range sorted {
		t.Years[i] = r.FiscalYear
	}
	for i, m := range core.Metrics {
		s := Series{
			Metric: m.Key(),
			Name:   m.Label(),
			Color:  defaultColors[i%len(defaultColors)],
			Values: make([]decimal.Decimal, len(sorted)),
		}
		for j, r := range sorted {
			s.Values[j] = r.Value(m)
		}
		t.Series[i] = s
	}
	return t
}

// Empty reports whether the trend has no fiscal years to plot.
func (t *Trend) Empty() bool {
	return t == nil || len(t.Years) == 0
}

// Frame is the drawing area of a chart in SVG user units.
type Frame struct {
	Width, Height                        float64
	PadLeft, PadRight, PadTop, PadBottom float64
}

// DefaultFrame matches the dashboard's 10:4 chart panels.
var DefaultFrame = Frame{Width: 800, Height: 320, PadLeft: 72, PadRight: 16, PadTop: 16, PadBottom: 36}

func (f Frame) plotWidth() float64 { return f.Width - f.PadLeft - f.PadRight }
func (f Frame) plotHeight() float64 { return f.Height - f.PadTop - f.PadBottom }

// Bottom returns the y coordinate of the plot's lower edge.
func (f Frame) Bottom() float64 { return f.Height - f.PadBottom }

// Right returns the x coordinate of the plot's right edge.
func (f Frame) Right() float64 { return f.Width - f.PadRight }

// Point is an SVG coordinate.
type Point struct {
	X, Y float64
}

// Line is one series drawn as a polyline.
type Line struct {
	Name   string
	Color  string
	Points []Point
}

// Bar is one rectangle of the grouped bar chart.
type Bar struct {
	Name       string
	Color      string
	Year       int
	Label      string
	X, Y, W, H float64
}

// Tick is an axis label at a coordinate.
type Tick struct {
	Pos   float64
	Label string
}

// bounds returns the value range to plot. Zero is always included so bars
// have a baseline and a flat series still gets a non-empty range.
func (t *Trend) bounds() (lo, hi float64) {
	for _, s := range t.Series {
		for _, v := range s.Values {
			f := v.InexactFloat64()
			lo = math.Min(lo, f)
			hi = math.Max(hi, f)
		}
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

// y maps a value to its vertical coordinate inside f.
func (t *Trend) y(f Frame, v float64) float64 {
	lo, hi := t.bounds()
	return f.PadTop + (hi-v)/(hi-lo)*f.plotHeight()
}

// lineX returns the x coordinate of the i-th year for line charts.
// A single year sits in the middle of the plot.
func (t *Trend) lineX(f Frame, i int) float64 {
	n := len(t.Years)
	if n <= 1 {
		return f.PadLeft + f.plotWidth()/2
	}
	return f.PadLeft + float64(i)*f.plotWidth()/float64(n-1)
}

// Lines returns one polyline per metric.
func (t *Trend) Lines(f Frame) []Line {
	if t.Empty() {
		return nil
	}
	lines := make([]Line, len(t.Series))
	for i, s := range t.Series {
		pts := make([]Point, len(s.Values))
		for j, v := range s.Values {
			pts[j] = Point{X: t.lineX(f, j), Y: t.y(f, v.InexactFloat64())}
		}
		lines[i] = Line{Name: s.Name, Color: s.Color, Points: pts}
	}
	return lines
}

// Bars returns the grouped bar chart: one group per year, one bar per metric.
// Negative values extend downward from the zero baseline.
func (t *Trend) Bars(f Frame) []Bar {
	if t.Empty() {
		return nil
	}
	groupW := f.plotWidth() / float64(len(t.Years))
	barW := groupW * 0.8 / float64(len(t.Series))
	zero := t.y(f, 0)

	bars := make([]Bar, 0, len(t.Years)*len(t.Series))
	for yi, year := range t.Years {
		x0 := f.PadLeft + float64(yi)*groupW + groupW*0.1
		for si, s := range t.Series {
			v := s.Values[yi]
			top := t.y(f, v.InexactFloat64())
			bars = append(bars, Bar{
				Name:  s.Name,
				Color: s.Color,
				Year:  year,
				Label: core.FormatCurrency(v),
				X:     x0 + float64(si)*barW,
				Y:     math.Min(top, zero),
				W:     barW,
				H:     math.Abs(zero - top),
			})
		}
	}
	return bars
}

// LineXTicks labels each year under the line chart.
func (t *Trend) LineXTicks(f Frame) []Tick {
	ticks := make([]Tick, len(t.Years))
	for i, year := range t.Years {
		ticks[i] = Tick{Pos: t.lineX(f, i), Label: fmt.Sprint(year)}
	}
	return ticks
}

// BarXTicks labels the center of each year group under the bar chart.
func (t *Trend) BarXTicks(f Frame) []Tick {
	if t.Empty() {
		return nil
	}
	groupW := f.plotWidth() / float64(len(t.Years))
	ticks := make([]Tick, len(t.Years))
	for i, year := range t.Years {
		ticks[i] = Tick{Pos: f.PadLeft + (float64(i)+0.5)*groupW, Label: fmt.Sprint(year)}
	}
	return ticks
}

// YTicks returns count+1 evenly spaced value labels from the minimum to the maximum.
func (t *Trend) YTicks(f Frame, count int) []Tick {
	if t.Empty() || count < 1 {
		return nil
	}
	lo, hi := t.bounds()
	ticks := make([]Tick, count+1)
	for i := 0; i <= count; i++ {
		v := lo + (hi-lo)*float64(i)/float64(count)
		ticks[i] = Tick{Pos: t.y(f, v), Label: Compact(v)}
	}
	return ticks
}

// Compact abbreviates a dollar amount for axis labels, e.g. 81462000000 → "$81.5B".
func Compact(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%s$%.1fT", sign, v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%s$%.1fB", sign, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s$%.1fM", sign, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s$%.1fK", sign, v/1e3)
	default:
		return fmt.Sprintf("%s$%.0f", sign, v)
	}
}

// Package render produces the server-rendered contributions widget: profile
// card, stats grid and one heat-map per calendar year.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/vmarko/contribgraph/internal/contrib"
)

// Grid geometry, in SVG user units.
const (
	cellSize         = 10
	cellGap          = 3
	weekWidth        = cellSize + cellGap
	monthLabelHeight = 18
	dayLabelWidth    = 28
)

//go:embed templates/widget.html.tmpl
var widgetTemplate string

var widgetTmpl = template.Must(
	template.New("widget").
		Funcs(template.FuncMap{
			"formatNumber": formatNumber,
			"cellSize":     func() int { return cellSize },
		}).
		Parse(widgetTemplate),
)

var levelColors = [5]string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}

type pageView struct {
	Username string
	Result   *contrib.Result
	Average  string
	Years    []yearView
}

type yearView struct {
	Year      int
	Total     int
	Width     int
	Height    int
	Open      bool
	Months    []labelView
	DayLabels []labelView
	Cells     []cellView
}

type labelView struct {
	Text string
	X    int
	Y    int
}

type cellView struct {
	X     int
	Y     int
	Color string
	Date  string
	Count int
}

// Page renders the widget HTML. With a nil result it renders just the search
// form and empty state; otherwise the profile card, stats grid and per-year
// heat-maps, most recent year expanded.
func Page(username string, result *contrib.Result) ([]byte, error) {
	view := pageView{Username: username, Result: result}

	if result != nil {
		view.Average = strconv.FormatFloat(result.Stats.AveragePerDay, 'f', -1, 64)

		groups := contrib.BuildCalendar(result.Contributions.Weeks)
		view.Years = make([]yearView, 0, len(groups))
		for i, g := range groups {
			view.Years = append(view.Years, buildYearView(g, i == 0))
		}
	}

	var buf bytes.Buffer
	if err := widgetTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render widget: %w", err)
	}
	return buf.Bytes(), nil
}

func buildYearView(g contrib.YearGroup, open bool) yearView {
	y := yearView{
		Year:   g.Year,
		Total:  g.Total,
		Width:  len(g.Weeks)*weekWidth + dayLabelWidth + 10,
		Height: 7*weekWidth + monthLabelHeight + 5,
		Open:   open,
	}

	for _, m := range g.Months {
		y.Months = append(y.Months, labelView{
			Text: m.Month,
			X:    dayLabelWidth + m.Col*weekWidth,
			Y:    10,
		})
	}

	for i, text := range [7]string{1: "Mon", 3: "Wed", 5: "Fri"} {
		if text == "" {
			continue
		}
		y.DayLabels = append(y.DayLabels, labelView{
			Text: text,
			Y:    monthLabelHeight + i*weekWidth + 8,
		})
	}

	for _, c := range g.Cells {
		y.Cells = append(y.Cells, cellView{
			X:     dayLabelWidth + c.Col*weekWidth,
			Y:     monthLabelHeight + c.Row*weekWidth,
			Color: colorFor(c.Level),
			Date:  c.Date,
			Count: c.Count,
		})
	}
	return y
}

func colorFor(level int) string {
	if level < 0 || level >= len(levelColors) {
		return levelColors[0]
	}
	return levelColors[level]
}

func formatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(n)/1_000_000), ".0") + "M"
	case n >= 1000:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(n)/1000), ".0") + "K"
	default:
		return strconv.Itoa(n)
	}
}

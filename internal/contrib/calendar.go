package contrib

import "sort"

// maxWeekDays caps the row addressing: a malformed upstream week longer than
// seven days would otherwise push cells past the grid.
const maxWeekDays = 7

// MonthLabel marks the column where a new month starts within a year's
// week sequence.
type MonthLabel struct {
	Month string `json:"month"`
	Col   int    `json:"col"`
}

// Cell is one day addressed on the grid: Row is the day's index within its
// week, Col the week's ordinal within its year. There is no realignment to
// calendar weekdays; fixed-weekday rows are an assumption inherited from the
// upstream provider.
type Cell struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

// YearGroup is one display section of the calendar: the weeks attributed to
// a calendar year plus the labels and cell addresses derived from them.
// Total is recomputed from the day counts, independent of Series.Total.
type YearGroup struct {
	Year   int          `json:"year"`
	Total  int          `json:"total"`
	Weeks  []Week       `json:"weeks"`
	Months []MonthLabel `json:"months"`
	Cells  []Cell       `json:"cells"`
}

// BuildCalendar groups weeks into per-year sections, most recent year first.
// A week belongs to the year of its first day; a week spanning a year
// boundary is attributed entirely to that year, never split. Weeks with no
// days or an unparseable first date are dropped.
func BuildCalendar(weeks []Week) []YearGroup {
	grouped := make(map[int][]Week)
	var years []int

	for _, w := range weeks {
		if len(w.Days) == 0 {
			continue
		}
		first, ok := parseDate(w.Days[0].Date)
		if !ok {
			continue
		}
		year := first.Year()
		if _, seen := grouped[year]; !seen {
			years = append(years, year)
		}
		grouped[year] = append(grouped[year], w)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]YearGroup, 0, len(years))
	for _, year := range years {
		groups = append(groups, buildYear(year, grouped[year]))
	}
	return groups
}

func buildYear(year int, weeks []Week) YearGroup {
	g := YearGroup{Year: year, Weeks: weeks}

	prevMonth := ""
	for col, w := range weeks {
		// One label per change of the first day's short month name.
		if first, ok := parseDate(w.Days[0].Date); ok {
			month := first.Format("Jan")
			if month != prevMonth {
				prevMonth = month
				g.Months = append(g.Months, MonthLabel{Month: month, Col: col})
			}
		}

		for _, d := range w.Days {
			g.Total += d.Count
		}

		days := w.Days
		if len(days) > maxWeekDays {
			days = days[:maxWeekDays]
		}
		for row, d := range days {
			g.Cells = append(g.Cells, Cell{
				Date:  d.Date,
				Count: d.Count,
				Level: d.Level,
				Row:   row,
				Col:   col,
			})
		}
	}
	return g
}

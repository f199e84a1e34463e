package contrib

import (
	"math"
	"sort"
	"time"
)

// ComputeStats derives streak, most-active-day and average figures from a
// series. An empty series yields the zero Stats; it never fails. The streak
// walk assumes at most one entry per calendar date; duplicate dates leave the
// current streak unspecified.
func ComputeStats(s Series) Stats {
	return computeStatsAt(s, time.Now().UTC())
}

func computeStatsAt(s Series, now time.Time) Stats {
	days := flatten(s)
	if len(days) == 0 {
		return Stats{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	most := mostActiveDay(days)

	return Stats{
		Total:         s.Total,
		CurrentStreak: currentStreak(days, today),
		LongestStreak: longestStreak(days),
		MostActiveDay: &most,
		// Average comes from the provider-level total, not a re-sum of the
		// day counts, which the provider allows to diverge.
		AveragePerDay: math.Round(float64(s.Total)/float64(len(days))*100) / 100,
	}
}

func flatten(s Series) []Day {
	var days []Day
	for _, w := range s.Weeks {
		days = append(days, w.Days...)
	}
	return days
}

// currentStreak walks the days newest-first, counting back from today.
// Future-dated entries are skipped, a zero-count day on the next required
// date ends the streak, and so does a gap in the series.
func currentStreak(days []Day, today time.Time) int {
	sorted := make([]Day, len(days))
	copy(sorted, days)
	// ISO dates order lexicographically.
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	streak := 0
	for _, d := range sorted {
		date, ok := parseDate(d.Date)
		if !ok || date.After(today) {
			continue
		}

		diff := int(today.Sub(date).Hours() / 24)
		switch {
		case diff == streak && d.Count > 0:
			streak++
		case diff == streak:
			return streak
		case diff > streak:
			return streak
		}
	}
	return streak
}

// longestStreak scans the days oldest-first and tracks the longest run of
// positive counts. Unlike the current streak it ignores today entirely.
func longestStreak(days []Day) int {
	sorted := make([]Day, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	longest, run := 0, 0
	for _, d := range sorted {
		if d.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// mostActiveDay reduces over the days in their original order with a strict
// comparison, so the first day to reach the maximum wins ties.
func mostActiveDay(days []Day) string {
	best := days[0]
	for _, d := range days[1:] {
		if d.Count > best.Count {
			best = d
		}
	}
	return best.Date
}

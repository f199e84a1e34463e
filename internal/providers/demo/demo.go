// Package demo serves synthetic data for offline development, so the app
// can be exercised without hitting either upstream API.
package demo

import (
	"context"
	"time"

	"github.com/vmarko/contribgraph/internal/contrib"
)

// Provider implements both source interfaces with generated data.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) FetchProfile(ctx context.Context, username string) (*contrib.Profile, error) {
	name := "Demo Developer"
	bio := "Synthetic profile served by the demo provider."

	return &contrib.Profile{
		Login:       username,
		Name:        &name,
		AvatarURL:   "https://github.com/identicons/" + username + ".png",
		Bio:         &bio,
		Followers:   10,
		Following:   5,
		PublicRepos: 12,
	}, nil
}

// FetchActivity generates one year of days ending today, partitioned into
// weeks of seven the way the real activity provider does.
func (p *Provider) FetchActivity(ctx context.Context, username string) (contrib.Series, error) {
	today := time.Now().UTC()
	start := today.AddDate(-1, 0, 0)

	var series contrib.Series
	var week contrib.Week

	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		count := (d.Day() + int(d.Month())*3) % 9
		series.Total += count

		week.Days = append(week.Days, contrib.Day{
			Date:  d.Format(contrib.DateLayout),
			Count: count,
			Level: levelFor(count),
		})
		if len(week.Days) == 7 {
			series.Weeks = append(series.Weeks, week)
			week = contrib.Week{}
		}
	}
	if len(week.Days) > 0 {
		series.Weeks = append(series.Weeks, week)
	}

	return series, nil
}

func levelFor(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}

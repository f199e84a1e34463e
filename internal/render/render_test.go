package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmarko/contribgraph/internal/contrib"
)

func sampleResult() *contrib.Result {
	name := "The Octocat"
	most := "2024-01-02"
	return &contrib.Result{
		User: &contrib.Profile{
			Login:       "octocat",
			Name:        &name,
			AvatarURL:   "https://example.com/a.png",
			Followers:   4200,
			PublicRepos: 8,
		},
		Contributions: contrib.Series{
			Total: 10,
			Weeks: []contrib.Week{
				{Days: []contrib.Day{
					{Date: "2024-01-01", Count: 1, Level: 1},
					{Date: "2024-01-02", Count: 9, Level: 4},
					{Date: "2024-01-03", Count: 0, Level: 0},
					{Date: "2024-01-04", Count: 0, Level: 0},
				}},
			},
		},
		Stats: contrib.Stats{
			Total:         10,
			CurrentStreak: 0,
			LongestStreak: 2,
			MostActiveDay: &most,
			AveragePerDay: 2.5,
		},
	}
}

func TestPage_EmptyState(t *testing.T) {
	html, err := Page("", nil)
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "Enter a GitHub username")
	assert.NotContains(t, page, `class="stats-grid"`)
}

func TestPage_RendersResult(t *testing.T) {
	html, err := Page("octocat", sampleResult())
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "The Octocat")
	assert.Contains(t, page, "@octocat")
	assert.Contains(t, page, "4.2K followers")
	// Average renders without zero padding.
	assert.Contains(t, page, `<div class="stat-value">2.5</div>`)
	assert.Contains(t, page, "<span>2024</span>")
	assert.Contains(t, page, ">Jan</text>")
	assert.Equal(t, 4, strings.Count(page, `class="contribution-cell"`))
	assert.Contains(t, page, "9 contributions on 2024-01-02")
	assert.Contains(t, page, "1 contribution on 2024-01-01")
}

func TestPage_RendersError(t *testing.T) {
	msg := `User "ghost" not found`
	html, err := Page("ghost", &contrib.Result{Error: &msg})
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "ghost")
	assert.Contains(t, page, `class="error"`)
	assert.NotContains(t, page, `class="stats-grid"`)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1K", formatNumber(1000))
	assert.Equal(t, "4.2K", formatNumber(4200))
	assert.Equal(t, "1.5M", formatNumber(1_500_000))
}

func TestColorFor_ClampsUnknownLevels(t *testing.T) {
	assert.Equal(t, levelColors[0], colorFor(-1))
	assert.Equal(t, levelColors[0], colorFor(9))
	assert.Equal(t, levelColors[4], colorFor(4))
}

// Package contribapi reads daily contribution counts from the public
// github-contributions-api.jogruber.de service, which exposes the data
// behind GitHub's contribution graph as plain JSON.
package contribapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vmarko/contribgraph/internal/contrib"
)

const (
	defaultBaseURL   = "https://github-contributions-api.jogruber.de/v4"
	defaultUserAgent = "contribgraph/0.1"
)

type Client struct {
	client  *http.Client
	baseURL string
}

func New() *Client {
	return &Client{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
	}
}

type contributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type contributionsResponse struct {
	Total         map[string]int    `json:"total"`
	Contributions []contributionDay `json:"contributions"`
}

// FetchActivity issues one read against the contributions endpoint and
// partitions the flat day list into weeks of seven, in upstream order, with
// no realignment to calendar week boundaries. The series total is the sum of
// the per-year totals the API reports, which may diverge from the sum of the
// individual day counts.
func (c *Client) FetchActivity(ctx context.Context, username string) (contrib.Series, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return contrib.Series{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return contrib.Series{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return contrib.Series{}, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	var body contributionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return contrib.Series{}, fmt.Errorf("decode contributions response: %w", err)
	}

	return buildSeries(body), nil
}

func buildSeries(body contributionsResponse) contrib.Series {
	var series contrib.Series

	for _, n := range body.Total {
		series.Total += n
	}

	for start := 0; start < len(body.Contributions); start += 7 {
		end := min(start+7, len(body.Contributions))
		week := contrib.Week{Days: make([]contrib.Day, 0, end-start)}
		for _, d := range body.Contributions[start:end] {
			week.Days = append(week.Days, contrib.Day{
				Date:  d.Date,
				Count: d.Count,
				Level: d.Level,
			})
		}
		series.Weeks = append(series.Weeks, week)
	}

	return series
}

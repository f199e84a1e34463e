package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmarko/contribgraph/internal/contrib"
)

type stubProfiles struct {
	profile *contrib.Profile
	err     error
	panics  bool
}

func (s *stubProfiles) FetchProfile(ctx context.Context, username string) (*contrib.Profile, error) {
	if s.panics {
		panic("profile source blew up")
	}
	return s.profile, s.err
}

type stubActivity struct {
	series contrib.Series
	err    error
}

func (s *stubActivity) FetchActivity(ctx context.Context, username string) (contrib.Series, error) {
	return s.series, s.err
}

func someSeries() contrib.Series {
	return contrib.Series{
		Total: 8,
		Weeks: []contrib.Week{
			{Days: []contrib.Day{
				{Date: "2024-01-01", Count: 3, Level: 2},
				{Date: "2024-01-02", Count: 5, Level: 3},
			}},
		},
	}
}

func TestFetch_BothEmpty_NotFound(t *testing.T) {
	svc := New(
		&stubProfiles{err: errors.New("boom")},
		&stubActivity{err: errors.New("boom")},
	)

	result := svc.Fetch(context.Background(), "ghost")

	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "ghost")
	assert.Nil(t, result.User)
	assert.Empty(t, result.Contributions.Weeks)
}

func TestFetch_ProfileFailedButActivityPresent(t *testing.T) {
	svc := New(
		&stubProfiles{err: errors.New("rate limited")},
		&stubActivity{series: someSeries()},
	)

	result := svc.Fetch(context.Background(), "octocat")

	assert.Nil(t, result.Error)
	assert.Nil(t, result.User)
	assert.Equal(t, 8, result.Stats.Total)
	assert.Len(t, result.Contributions.Weeks, 1)
}

func TestFetch_ActivityFailedButProfilePresent(t *testing.T) {
	svc := New(
		&stubProfiles{profile: &contrib.Profile{Login: "octocat"}},
		&stubActivity{err: errors.New("upstream down")},
	)

	result := svc.Fetch(context.Background(), "octocat")

	assert.Nil(t, result.Error)
	require.NotNil(t, result.User)
	assert.Equal(t, "octocat", result.User.Login)
	assert.Zero(t, result.Stats.Total)
}

func TestFetch_BothPresent(t *testing.T) {
	svc := New(
		&stubProfiles{profile: &contrib.Profile{Login: "octocat"}},
		&stubActivity{series: someSeries()},
	)

	result := svc.Fetch(context.Background(), "octocat")

	assert.Nil(t, result.Error)
	require.NotNil(t, result.User)
	require.NotNil(t, result.Stats.MostActiveDay)
	assert.Equal(t, "2024-01-02", *result.Stats.MostActiveDay)
}

func TestFetch_PanickingSourceIsAbsorbed(t *testing.T) {
	svc := New(
		&stubProfiles{panics: true},
		&stubActivity{series: someSeries()},
	)

	result := svc.Fetch(context.Background(), "octocat")

	assert.Nil(t, result.Error)
	assert.Nil(t, result.User)
	assert.Equal(t, 8, result.Stats.Total)
}

// Package aggregate joins the two upstream reads into one response.
// Provider failures collapse to their empty sentinels at this boundary; the
// root cause survives only as a structured log entry, and callers never see
// an error value.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vmarko/contribgraph/internal/contrib"
	"github.com/vmarko/contribgraph/internal/providers"
)

type Service struct {
	profiles providers.ProfileSource
	activity providers.ActivitySource
}

func New(profiles providers.ProfileSource, activity providers.ActivitySource) *Service {
	return &Service{
		profiles: profiles,
		activity: activity,
	}
}

// Fetch looks up a user's profile and activity concurrently and derives the
// statistics from the series. A failed or absent profile alongside a
// non-empty series is still a full answer; only when both sides come back
// empty does the result carry a not-found message naming the username.
func (s *Service) Fetch(ctx context.Context, username string) (result contrib.Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Contributions lookup panicked", "username", username, "panic", r)
			msg := fmt.Sprintf("contributions lookup for %q failed: %v", username, r)
			result = contrib.Result{Error: &msg}
		}
	}()

	var (
		wg      sync.WaitGroup
		profile *contrib.Profile
		series  contrib.Series
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		defer absorbPanic(username, "profile")

		p, err := s.profiles.FetchProfile(ctx, username)
		if err != nil {
			slog.Warn("Profile lookup failed", "username", username, "error", err)
			return
		}
		profile = p
	}()
	go func() {
		defer wg.Done()
		defer absorbPanic(username, "activity")

		sr, err := s.activity.FetchActivity(ctx, username)
		if err != nil {
			slog.Warn("Activity lookup failed", "username", username, "error", err)
			return
		}
		series = sr
	}()
	wg.Wait()

	if profile == nil && len(series.Weeks) == 0 {
		msg := fmt.Sprintf("User %q not found", username)
		return contrib.Result{Error: &msg}
	}

	return contrib.Result{
		User:          profile,
		Contributions: series,
		Stats:         contrib.ComputeStats(series),
	}
}

// absorbPanic keeps a panicking source from taking the process down; the
// source's side of the result simply stays empty, same as any other failure.
func absorbPanic(username, source string) {
	if r := recover(); r != nil {
		slog.Error("Source panicked", "username", username, "source", source, "panic", r)
	}
}

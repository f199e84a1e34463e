package providers

import (
	"context"

	"github.com/vmarko/contribgraph/internal/contrib"
)

// ProfileSource yields the canonical profile for a username. Implementations
// return an error for any failure mode; the aggregator decides how absence
// is represented.
type ProfileSource interface {
	FetchProfile(ctx context.Context, username string) (*contrib.Profile, error)
}

// ActivitySource yields the week-partitioned activity series for a username.
type ActivitySource interface {
	FetchActivity(ctx context.Context, username string) (contrib.Series, error)
}

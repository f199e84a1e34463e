package contrib

import "time"

// DateLayout is the wire format both providers use for calendar dates.
const DateLayout = "2006-01-02"

// Day is one calendar day of activity. Level is the provider's 0-4
// intensity bucket and is passed through untouched, never recomputed.
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Week is an ordered run of up to seven days, in the order the provider
// emitted them. Day 0 is not guaranteed to be any particular weekday.
type Week struct {
	Days []Day `json:"contributionDays"`
}

// Series is the canonical week-partitioned activity series. Total is the
// provider-level figure and may diverge from the sum of the day counts.
type Series struct {
	Total int    `json:"totalContributions"`
	Weeks []Week `json:"weeks"`
}

// Profile is the canonical user record. Only Login is guaranteed when a
// profile exists; the pointer fields keep "not provided" distinct from an
// empty string.
type Profile struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	AvatarURL   string  `json:"avatarUrl"`
	Bio         *string `json:"bio"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	PublicRepos int     `json:"publicRepos"`
}

// DisplayName prefers the profile's full name over the login.
func (p *Profile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Login
}

// Stats are the figures derived from a series by ComputeStats.
type Stats struct {
	Total         int     `json:"totalContributions"`
	CurrentStreak int     `json:"currentStreak"`
	LongestStreak int     `json:"longestStreak"`
	MostActiveDay *string `json:"mostActiveDay"`
	AveragePerDay float64 `json:"averagePerDay"`
}

// Result is the combined lookup response. Error is set only when both the
// profile and the series came back empty.
type Result struct {
	User          *Profile `json:"user"`
	Contributions Series   `json:"contributions"`
	Stats         Stats    `json:"stats"`
	Error         *string  `json:"error"`
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

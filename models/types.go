package models

import (
	"math"
	"strings"
	"time"
)

// Campaign status constants
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Sort key constants for catalog search
const (
	SortPopular  = "popular"
	SortNew      = "new"
	SortTitle    = "title"
	SortDuration = "duration"
	SortPlayers  = "players"
	SortAge      = "age"
)

// Request types

type SubmitVoteRequest struct {
	CampaignID  string `json:"campaignId"`
	Fingerprint string `json:"fingerprint"`
}

// Response types

type SubmitVoteResponse struct {
	Success bool `json:"success"`
}

type SearchResponse struct {
	Items    []CatalogItem `json:"items"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
	Facets   Facets        `json:"facets"`
}

// Domain types

type Campaign struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	Status           string    `json:"status"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	Tags             []string  `json:"tags"`
	DurationHours    *float64  `json:"duration_hours"`
	PlayersMin       *int      `json:"players_min"`
	PlayersMax       *int      `json:"players_max"`
	Age              *string   `json:"age"`
	CoverURL         *string   `json:"cover_url"`
	CreatedAt        time.Time `json:"created_at"`
}

// CatalogItem is a campaign as it appears in a search result page,
// merged with its rolling 30-day vote count.
type CatalogItem struct {
	Campaign
	Votes int `json:"votes30d"`
}

// CampaignDetail is a single campaign looked up by slug, merged with
// its rolling vote count.
type CampaignDetail struct {
	Campaign
	Votes int `json:"votes"`
}

type Vote struct {
	ID              string    `json:"id"`
	CampaignID      string    `json:"campaign_id"`
	FingerprintHash string    `json:"-"` // Never expose in JSON
	IPHash          string    `json:"-"` // Never expose in JSON
	UserAgentHash   *string   `json:"-"` // Never expose in JSON
	CreatedAt       time.Time `json:"created_at"`
}

// VoteAggregateRow is one row of the vote aggregation result: a
// campaign id and its rolling vote count. The order of rows returned
// by an aggregator is authoritative for the "popular" sort.
type VoteAggregateRow struct {
	CampaignID string `db:"campaign_id" json:"campaign_id"`
	Votes      int    `db:"votes" json:"votes"`
}

// Filters holds the request-scoped catalog search parameters. Nil
// numeric bounds mean "no bound"; an empty Statuses slice means the
// default published-only visibility.
type Filters struct {
	Query       string
	Tags        []string
	Statuses    []string
	DurationMin *int
	DurationMax *int
	PlayersMin  *int
	PlayersMax  *int
	Age         string
	Sort        string
	Page        int
}

// Facets summarizes the full filtered result set before pagination.
type Facets struct {
	Tags     []string      `json:"tags"`
	Statuses []string      `json:"statuses"`
	Ages     []string      `json:"ages"`
	Duration DurationRange `json:"duration"`
	Players  PlayersRange  `json:"players"`
}

type DurationRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PlayersRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Matches reports whether the campaign satisfies every filter
// predicate: status visibility, case-insensitive substring match over
// title/short description, tag containment, inclusive numeric ranges,
// and exact age equality. Campaigns lacking a value fail any range or
// age predicate that requires one.
func (f Filters) Matches(c Campaign) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if c.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	} else if c.Status != StatusPublished {
		return false
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.ShortDescription), q) {
			return false
		}
	}

	for _, want := range f.Tags {
		found := false
		for _, have := range c.Tags {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.DurationMin != nil && (c.DurationHours == nil || *c.DurationHours < float64(*f.DurationMin)) {
		return false
	}
	if f.DurationMax != nil && (c.DurationHours == nil || *c.DurationHours > float64(*f.DurationMax)) {
		return false
	}
	if f.PlayersMin != nil && (c.PlayersMin == nil || *c.PlayersMin < *f.PlayersMin) {
		return false
	}
	if f.PlayersMax != nil && (c.PlayersMax == nil || *c.PlayersMax > *f.PlayersMax) {
		return false
	}

	if f.Age != "" && (c.Age == nil || *c.Age != f.Age) {
		return false
	}

	return true
}

// LeadingInt parses the leading decimal digits of s, so age labels
// like "16+" sort as 16. Returns 0 and false when s has no leading
// digits. Values beyond the int range saturate at math.MaxInt rather
// than wrapping.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n > (math.MaxInt-9)/10 {
			n = math.MaxInt
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			break
		}
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == 0 {
		return 0, false
	}
	return n, true
}

// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/questboard/questboard/models"
	"github.com/questboard/questboard/store"
)

// PageSize is the fixed number of items per result page.
const PageSize = 10

// Service runs the catalog query pipeline: filter, facet, aggregate,
// sort, paginate, merge. It is stateless; every call re-reads current
// data from its collaborators.
type Service struct {
	store store.CampaignStore
	agg   store.VoteAggregator
}

// New creates a catalog service over the given collaborators.
func New(st store.CampaignStore, agg store.VoteAggregator) *Service {
	return &Service{store: st, agg: agg}
}

// Search executes one catalog query. Facets and the vote aggregation
// call always cover the FULL filtered set, never just the requested
// page; pagination is the last step. A page past the end yields an
// empty items slice, not an error.
func (s *Service) Search(ctx context.Context, f models.Filters) (*models.SearchResponse, error) {
	if f.Page < 1 {
		f.Page = 1
	}

	campaigns, err := s.store.ListCampaigns(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	facets := computeFacets(campaigns)

	ids := make([]string, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}
	aggRows, err := s.agg.AggregateVotes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate votes: %w", err)
	}
	votesByID := make(map[string]int, len(aggRows))
	for _, row := range aggRows {
		votesByID[row.CampaignID] = row.Votes
	}

	sortedIDs := sortIDs(campaigns, f.Sort, aggRows)

	total := len(campaigns)
	// Compare pages, not offsets: (f.Page-1)*PageSize can overflow for
	// an absurd page value, which must yield an empty page, not a panic.
	lastPage := (len(sortedIDs) + PageSize - 1) / PageSize
	start := len(sortedIDs)
	if f.Page <= lastPage {
		start = (f.Page - 1) * PageSize
	}
	end := start + PageSize
	if end > len(sortedIDs) {
		end = len(sortedIDs)
	}
	pagedIDs := sortedIDs[start:end]

	byID := make(map[string]models.Campaign, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
	}
	items := make([]models.CatalogItem, 0, len(pagedIDs))
	for _, id := range pagedIDs {
		items = append(items, models.CatalogItem{
			Campaign: byID[id],
			Votes:    votesByID[id],
		})
	}

	return &models.SearchResponse{
		Items:    items,
		Total:    total,
		Page:     f.Page,
		PageSize: PageSize,
		Facets:   facets,
	}, nil
}

// GetBySlug looks up one published campaign and merges its vote count.
// Absent and unpublished campaigns both produce store.ErrNotFound so
// slug probing cannot reveal drafts.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.CampaignDetail, error) {
	c, err := s.store.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	rows, err := s.agg.AggregateVotes(ctx, []string{c.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate votes: %w", err)
	}
	votes := 0
	if len(rows) > 0 {
		votes = rows[0].Votes
	}

	return &models.CampaignDetail{Campaign: *c, Votes: votes}, nil
}

// computeFacets makes a single pass over the filtered set. Distinct
// value lists come back alphabetically sorted; ages sort lexically,
// not numerically.
func computeFacets(campaigns []models.Campaign) models.Facets {
	tagSet := make(map[string]struct{})
	statusSet := make(map[string]struct{})
	ageSet := make(map[string]struct{})

	var (
		durMin, durMax         float64
		durFound               bool
		playersMin, playersMax int
		playersMinFound        bool
	)

	for _, c := range campaigns {
		for _, t := range c.Tags {
			tagSet[t] = struct{}{}
		}
		statusSet[c.Status] = struct{}{}
		if c.Age != nil {
			ageSet[*c.Age] = struct{}{}
		}
		if c.DurationHours != nil {
			if !durFound || *c.DurationHours < durMin {
				durMin = *c.DurationHours
			}
			if *c.DurationHours > durMax {
				durMax = *c.DurationHours
			}
			durFound = true
		}
		if c.PlayersMin != nil {
			if !playersMinFound || *c.PlayersMin < playersMin {
				playersMin = *c.PlayersMin
			}
			playersMinFound = true
		}
		if c.PlayersMax != nil && *c.PlayersMax > playersMax {
			playersMax = *c.PlayersMax
		}
	}

	return models.Facets{
		Tags:     sortedKeys(tagSet),
		Statuses: sortedKeys(statusSet),
		Ages:     sortedKeys(ageSet),
		Duration: models.DurationRange{Min: durMin, Max: durMax},
		Players:  models.PlayersRange{Min: playersMin, Max: playersMax},
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortIDs orders the full filtered set. Every sort is stable; the
// default "popular" order is taken verbatim from the aggregator's row
// order rather than recomputed here.
func sortIDs(campaigns []models.Campaign, sortKey string, aggRows []models.VoteAggregateRow) []string {
	switch sortKey {
	case models.SortNew:
		return sortBy(campaigns, func(a, b models.Campaign) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
	case models.SortTitle:
		return sortBy(campaigns, func(a, b models.Campaign) bool {
			return strings.Compare(a.Title, b.Title) < 0
		})
	case models.SortDuration:
		return sortBy(campaigns, func(a, b models.Campaign) bool {
			return floatOrZero(a.DurationHours) < floatOrZero(b.DurationHours)
		})
	case models.SortPlayers:
		return sortBy(campaigns, func(a, b models.Campaign) bool {
			return intOrZero(a.PlayersMin) < intOrZero(b.PlayersMin)
		})
	case models.SortAge:
		return sortBy(campaigns, func(a, b models.Campaign) bool {
			return ageKey(a.Age) < ageKey(b.Age)
		})
	default: // popular
		inSet := make(map[string]struct{}, len(campaigns))
		for _, c := range campaigns {
			inSet[c.ID] = struct{}{}
		}
		ids := make([]string, 0, len(campaigns))
		for _, row := range aggRows {
			if _, ok := inSet[row.CampaignID]; ok {
				ids = append(ids, row.CampaignID)
			}
		}
		return ids
	}
}

func sortBy(campaigns []models.Campaign, less func(a, b models.Campaign) bool) []string {
	sorted := make([]models.Campaign, len(campaigns))
	copy(sorted, campaigns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	ids := make([]string, len(sorted))
	for i, c := range sorted {
		ids[i] = c.ID
	}
	return ids
}

// ageKey turns an age label into its sort key: the leading digits of
// the label ("16+" sorts as 16), or 0 when missing or non-numeric.
func ageKey(age *string) int {
	if age == nil {
		return 0
	}
	n, _ := models.LeadingInt(*age)
	return n
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

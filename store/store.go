// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/questboard/questboard/models"
)

var (
	// ErrNotFound is returned when a campaign is absent or filtered
	// out by visibility rules. Callers must not distinguish the two.
	ErrNotFound = errors.New("campaign not found")

	// ErrDuplicateVote is returned when a vote for the same
	// (campaign_id, fingerprint_hash) pair already exists.
	ErrDuplicateVote = errors.New("duplicate vote")
)

// CampaignStore is the read side of the campaign datastore.
type CampaignStore interface {
	// ListCampaigns returns every campaign matching the filters
	// (visibility, text, tags, ranges, age). Pagination and sorting
	// are NOT applied here: the catalog pipeline needs the full
	// filtered set to compute facets.
	ListCampaigns(ctx context.Context, f models.Filters) ([]models.Campaign, error)

	// GetPublishedBySlug returns the published campaign with the
	// given slug, or ErrNotFound. Draft and nonexistent campaigns are
	// indistinguishable by design.
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Campaign, error)

	// PublishedExists reports whether a published campaign with the
	// given id exists.
	PublishedExists(ctx context.Context, id string) (bool, error)
}

// VoteStore is the write side for anonymous votes.
type VoteStore interface {
	// HasVote reports whether a vote with the given campaign id and
	// fingerprint hash already exists.
	HasVote(ctx context.Context, campaignID, fingerprintHash string) (bool, error)

	// InsertVote records a new vote. Returns ErrDuplicateVote when
	// the storage-level uniqueness constraint on
	// (campaign_id, fingerprint_hash) rejects the row.
	InsertVote(ctx context.Context, v *models.Vote) error
}

// VoteAggregator returns rolling 30-day vote counts for a batch of
// campaign ids. Every requested id gets a row (zero votes included),
// and the row order (most voted first) is authoritative for the
// catalog's "popular" sort.
type VoteAggregator interface {
	AggregateVotes(ctx context.Context, ids []string) ([]models.VoteAggregateRow, error)
}

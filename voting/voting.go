// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/questboard/questboard/anonymize"
	"github.com/questboard/questboard/models"
	"github.com/questboard/questboard/store"
)

var (
	// ErrMalformed means campaignId or fingerprint was empty.
	ErrMalformed = errors.New("campaignId and fingerprint are required")

	// ErrCampaignNotFound covers both nonexistent and unpublished
	// campaigns. One error for both, so the rejection cannot be used
	// to probe for drafts.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrAlreadyVoted means a vote with the same fingerprint already
	// exists for the campaign.
	ErrAlreadyVoted = errors.New("already voted")
)

// Meta carries the request metadata recorded (hashed) with a vote.
type Meta struct {
	IP        string
	UserAgent string
}

// Service accepts anonymous votes: one per (campaign, fingerprint).
type Service struct {
	campaigns store.CampaignStore
	votes     store.VoteStore
}

// New creates a vote submission service.
func New(campaigns store.CampaignStore, votes store.VoteStore) *Service {
	return &Service{campaigns: campaigns, votes: votes}
}

// Submit validates and records one vote. Only hashes of the
// fingerprint, IP, and user agent are persisted, never the raw values.
// Returns ErrMalformed, ErrCampaignNotFound, ErrAlreadyVoted, or a
// wrapped datastore error.
func (s *Service) Submit(ctx context.Context, campaignID, fingerprint string, meta Meta) error {
	if campaignID == "" || fingerprint == "" {
		return ErrMalformed
	}

	published, err := s.campaigns.PublishedExists(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("failed to load campaign: %w", err)
	}
	if !published {
		return ErrCampaignNotFound
	}

	fingerprintHash := anonymize.Hash(fingerprint)

	exists, err := s.votes.HasVote(ctx, campaignID, fingerprintHash)
	if err != nil {
		return fmt.Errorf("failed to check existing vote: %w", err)
	}
	if exists {
		return ErrAlreadyVoted
	}

	vote := &models.Vote{
		ID:              uuid.NewString(),
		CampaignID:      campaignID,
		FingerprintHash: fingerprintHash,
		IPHash:          anonymize.Hash(meta.IP),
		UserAgentHash:   anonymize.HashOrNil(meta.UserAgent),
		CreatedAt:       time.Now(),
	}
	if err := s.votes.InsertVote(ctx, vote); err != nil {
		// The unique index catches what the racy check above can miss.
		if errors.Is(err, store.ErrDuplicateVote) {
			return ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

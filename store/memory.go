// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/questboard/questboard/models"
)

// aggregationWindow matches the Postgres aggregator's rolling window.
const aggregationWindow = 30 * 24 * time.Hour

// Memory is an in-process implementation of CampaignStore, VoteStore,
// and VoteAggregator. It exists so services and handlers can be tested
// without a live Postgres; semantics mirror the Postgres adapter.
type Memory struct {
	mu        sync.RWMutex
	campaigns []models.Campaign
	votes     []models.Vote
	err       error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// AddCampaign seeds a campaign. Insertion order is preserved.
func (m *Memory) AddCampaign(c models.Campaign) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.campaigns = append(m.campaigns, c)
}

// AddVote seeds a vote without any uniqueness or visibility checks.
func (m *Memory) AddVote(v models.Vote) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.votes = append(m.votes, v)
}

// FailWith makes every subsequent operation return err, simulating an
// unreachable datastore. Pass nil to recover.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// VoteCount returns the number of stored votes.
func (m *Memory) VoteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.votes)
}

func (m *Memory) ListCampaigns(_ context.Context, f models.Filters) ([]models.Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}

	matched := make([]models.Campaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (m *Memory) GetPublishedBySlug(_ context.Context, slug string) (*models.Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}

	for _, c := range m.campaigns {
		if c.Slug == slug && c.Status == models.StatusPublished {
			out := c
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) PublishedExists(_ context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return false, m.err
	}

	for _, c := range m.campaigns {
		if c.ID == id && c.Status == models.StatusPublished {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) HasVote(_ context.Context, campaignID, fingerprintHash string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return false, m.err
	}

	for _, v := range m.votes {
		if v.CampaignID == campaignID && v.FingerprintHash == fingerprintHash {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) InsertVote(_ context.Context, v *models.Vote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	for _, existing := range m.votes {
		if existing.CampaignID == v.CampaignID && existing.FingerprintHash == v.FingerprintHash {
			return ErrDuplicateVote
		}
	}
	m.votes = append(m.votes, *v)
	return nil
}

// AggregateVotes counts votes inside the rolling window per requested
// id, most voted first, campaign id ascending on ties. Matches the
// order the Postgres aggregator produces.
func (m *Memory) AggregateVotes(_ context.Context, ids []string) ([]models.VoteAggregateRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}

	cutoff := time.Now().Add(-aggregationWindow)
	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		counts[id] = 0
	}
	for _, v := range m.votes {
		if _, ok := counts[v.CampaignID]; ok && v.CreatedAt.After(cutoff) {
			counts[v.CampaignID]++
		}
	}

	rows := make([]models.VoteAggregateRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.VoteAggregateRow{CampaignID: id, Votes: counts[id]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Votes != rows[j].Votes {
			return rows[i].Votes > rows[j].Votes
		}
		return rows[i].CampaignID < rows[j].CampaignID
	})
	return rows, nil
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/questboard/questboard/models"
)

func publishedCampaign(id string) models.Campaign {
	return models.Campaign{
		ID:        id,
		Slug:      "slug-" + id,
		Status:    models.StatusPublished,
		Title:     "Campaign " + id,
		CreatedAt: time.Now(),
	}
}

func TestMemoryInsertVoteDuplicate(t *testing.T) {
	mem := NewMemory()
	mem.AddCampaign(publishedCampaign("a"))

	vote := &models.Vote{ID: "v1", CampaignID: "a", FingerprintHash: "h1", IPHash: "ip", CreatedAt: time.Now()}
	if err := mem.InsertVote(context.Background(), vote); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	dup := &models.Vote{ID: "v2", CampaignID: "a", FingerprintHash: "h1", IPHash: "ip", CreatedAt: time.Now()}
	if err := mem.InsertVote(context.Background(), dup); err != ErrDuplicateVote {
		t.Errorf("Expected ErrDuplicateVote, got %v", err)
	}

	// Same fingerprint on another campaign is fine
	mem.AddCampaign(publishedCampaign("b"))
	other := &models.Vote{ID: "v3", CampaignID: "b", FingerprintHash: "h1", IPHash: "ip", CreatedAt: time.Now()}
	if err := mem.InsertVote(context.Background(), other); err != nil {
		t.Errorf("Insert on different campaign failed: %v", err)
	}
}

func TestMemoryAggregateVotesOrderAndWindow(t *testing.T) {
	mem := NewMemory()
	now := time.Now()

	// b: 2 recent votes; a: 1 recent + 1 stale; c: none
	mem.AddVote(models.Vote{ID: "1", CampaignID: "b", FingerprintHash: "f1", CreatedAt: now})
	mem.AddVote(models.Vote{ID: "2", CampaignID: "b", FingerprintHash: "f2", CreatedAt: now})
	mem.AddVote(models.Vote{ID: "3", CampaignID: "a", FingerprintHash: "f3", CreatedAt: now})
	mem.AddVote(models.Vote{ID: "4", CampaignID: "a", FingerprintHash: "f4", CreatedAt: now.Add(-31 * 24 * time.Hour)})

	rows, err := mem.AggregateVotes(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("AggregateVotes failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected a row for every requested id, got %d", len(rows))
	}
	want := []models.VoteAggregateRow{
		{CampaignID: "b", Votes: 2},
		{CampaignID: "a", Votes: 1},
		{CampaignID: "c", Votes: 0},
	}
	for i, row := range rows {
		if row != want[i] {
			t.Errorf("Row %d = %+v, want %+v", i, row, want[i])
		}
	}
}

func TestMemoryAggregateVotesTieBreaksByID(t *testing.T) {
	mem := NewMemory()
	now := time.Now()
	mem.AddVote(models.Vote{ID: "1", CampaignID: "z", FingerprintHash: "f1", CreatedAt: now})
	mem.AddVote(models.Vote{ID: "2", CampaignID: "a", FingerprintHash: "f2", CreatedAt: now})

	rows, err := mem.AggregateVotes(context.Background(), []string{"z", "a"})
	if err != nil {
		t.Fatalf("AggregateVotes failed: %v", err)
	}
	if rows[0].CampaignID != "a" || rows[1].CampaignID != "z" {
		t.Errorf("Expected id-ascending tie break, got %v", rows)
	}
}

func TestMemoryListCampaignsFilters(t *testing.T) {
	mem := NewMemory()
	pub := publishedCampaign("pub")
	pub.Tags = []string{"rpg"}
	draft := publishedCampaign("draft")
	draft.Status = models.StatusDraft
	mem.AddCampaign(pub)
	mem.AddCampaign(draft)

	got, err := mem.ListCampaigns(context.Background(), models.Filters{})
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "pub" {
		t.Errorf("Default visibility should return only published, got %v", got)
	}

	got, err = mem.ListCampaigns(context.Background(), models.Filters{Statuses: []string{models.StatusDraft}})
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "draft" {
		t.Errorf("Status override should return the draft, got %v", got)
	}
}

func TestMemoryListCampaignsQueryIsLiteral(t *testing.T) {
	mem := NewMemory()
	sale := publishedCampaign("sale")
	sale.Title = "Save 50% on Doom"
	plain := publishedCampaign("plain")
	plain.Title = "Saves on Doom"
	mem.AddCampaign(sale)
	mem.AddCampaign(plain)

	// "%" is a plain character here, never a wildcard. The Postgres
	// store escapes it to match this contract.
	got, err := mem.ListCampaigns(context.Background(), models.Filters{Query: "50%"})
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "sale" {
		t.Errorf("Expected only the literal %%-titled campaign, got %v", got)
	}
}

func TestMemoryGetPublishedBySlug(t *testing.T) {
	mem := NewMemory()
	mem.AddCampaign(publishedCampaign("a"))
	draft := publishedCampaign("d")
	draft.Status = models.StatusDraft
	mem.AddCampaign(draft)

	if _, err := mem.GetPublishedBySlug(context.Background(), "slug-a"); err != nil {
		t.Errorf("Expected published campaign, got %v", err)
	}
	if _, err := mem.GetPublishedBySlug(context.Background(), "slug-d"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound for draft, got %v", err)
	}
	if _, err := mem.GetPublishedBySlug(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound for missing, got %v", err)
	}
}

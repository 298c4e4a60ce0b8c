// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/questboard/questboard/config"
	"github.com/questboard/questboard/models"
	"github.com/questboard/questboard/store"
)

// Ptr returns a pointer to v, for optional campaign fields.
func Ptr[T any](v T) *T {
	return &v
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "8080", Host: "127.0.0.1"},
		Vote:   config.VoteConfig{RatePerMinute: 600, Burst: 100},
	}
}

// CampaignOption mutates a seeded campaign.
type CampaignOption func(*models.Campaign)

func WithStatus(status string) CampaignOption {
	return func(c *models.Campaign) { c.Status = status }
}

func WithTags(tags ...string) CampaignOption {
	return func(c *models.Campaign) { c.Tags = tags }
}

func WithDuration(hours float64) CampaignOption {
	return func(c *models.Campaign) { c.DurationHours = &hours }
}

func WithPlayers(min, max int) CampaignOption {
	return func(c *models.Campaign) {
		c.PlayersMin = &min
		c.PlayersMax = &max
	}
}

func WithAge(age string) CampaignOption {
	return func(c *models.Campaign) { c.Age = &age }
}

func WithCreatedAt(t time.Time) CampaignOption {
	return func(c *models.Campaign) { c.CreatedAt = t }
}

func WithTitle(title string) CampaignOption {
	return func(c *models.Campaign) { c.Title = title }
}

func WithDescription(desc string) CampaignOption {
	return func(c *models.Campaign) { c.ShortDescription = desc }
}

// SeedCampaign adds a published campaign with the given id to the
// memory store; the slug is "slug-" + id and the title defaults to
// "Campaign " + id. Options override any field.
func SeedCampaign(t *testing.T, st *store.Memory, id string, opts ...CampaignOption) models.Campaign {
	t.Helper()

	c := models.Campaign{
		ID:        id,
		Slug:      "slug-" + id,
		Status:    models.StatusPublished,
		Title:     "Campaign " + id,
		Tags:      []string{},
		CreatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	st.AddCampaign(c)
	return c
}

// SeedVotes adds n recent votes for the campaign, each with a distinct
// fingerprint hash.
func SeedVotes(t *testing.T, st *store.Memory, campaignID string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		st.AddVote(models.Vote{
			ID:              fmt.Sprintf("%s-vote-%d", campaignID, i),
			CampaignID:      campaignID,
			FingerprintHash: fmt.Sprintf("%s-fp-%d", campaignID, i),
			IPHash:          "ip",
			CreatedAt:       time.Now(),
		})
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

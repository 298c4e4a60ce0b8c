// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/questboard/questboard/catalog"
	"github.com/questboard/questboard/metrics"
	"github.com/questboard/questboard/middleware"
	"github.com/questboard/questboard/models"
	"github.com/questboard/questboard/store"
)

type CampaignHandler struct {
	catalog *catalog.Service
}

func NewCampaignHandler(svc *catalog.Service) *CampaignHandler {
	return &CampaignHandler{catalog: svc}
}

// Search handles GET /campaigns
func (h *CampaignHandler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	filters := ParseFilters(r.URL.Query())

	resp, err := h.catalog.Search(r.Context(), filters)
	if err != nil {
		slog.Error("catalog search failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Service unavailable")
		return
	}

	metrics.RecordSearch(time.Since(start).Seconds())
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetBySlug handles GET /campaigns/{slug}
func (h *CampaignHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	detail, err := h.catalog.GetBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("campaign lookup failed", "error", err, "slug", slug)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Service unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// ParseFilters builds catalog filters from query parameters. Absent or
// non-numeric bounds are no-ops; page defaults to 1 and is clamped to
// a minimum of 1, never validated against an upper bound.
func ParseFilters(q url.Values) models.Filters {
	f := models.Filters{
		Query: strings.TrimSpace(q.Get("query")),
		Tags:  splitCSV(q.Get("tags")),
		Age:   strings.TrimSpace(q.Get("age")),
		Sort:  q.Get("sort"),
		Page:  1,
	}

	if f.Sort == "" {
		f.Sort = models.SortPopular
	}
	if statuses := splitCSV(q.Get("statuses")); len(statuses) > 0 {
		f.Statuses = statuses
	}
	if page, ok := models.LeadingInt(q.Get("page")); ok && page > 1 {
		f.Page = page
	}

	f.DurationMin = intParam(q.Get("durationMin"))
	f.DurationMax = intParam(q.Get("durationMax"))
	f.PlayersMin = intParam(q.Get("playersMin"))
	f.PlayersMax = intParam(q.Get("playersMax"))

	return f
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intParam(s string) *int {
	n, ok := models.LeadingInt(s)
	if !ok {
		return nil
	}
	return &n
}

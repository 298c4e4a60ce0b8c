// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/questboard/questboard/catalog"
	"github.com/questboard/questboard/config"
	"github.com/questboard/questboard/handlers"
	"github.com/questboard/questboard/middleware"
	"github.com/questboard/questboard/voting"
)

// Pinger reports datastore reachability for the db health check.
// Nil disables the check (the endpoint then reports ok).
type Pinger interface {
	PingContext(ctx context.Context) error
}

func New(cat *catalog.Service, vot *voting.Service, pinger Pinger, cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	campaignHandler := handlers.NewCampaignHandler(cat)
	voteHandler := handlers.NewVoteHandler(vot)
	voteLimiter := middleware.NewIPRateLimiter(cfg.Vote.RatePerMinute, cfg.Vote.Burst)

	// Health checks
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /health/db", func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			if err := pinger.PingContext(r.Context()); err != nil {
				middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog (public)
	mux.HandleFunc("GET /campaigns", middleware.WithLogging("/campaigns", campaignHandler.Search))
	mux.HandleFunc("GET /campaigns/{slug}", middleware.WithLogging("/campaigns/{slug}", campaignHandler.GetBySlug))

	// Voting (public, rate limited)
	mux.HandleFunc("POST /vote", middleware.WithLogging("/vote",
		middleware.WithRateLimit(voteLimiter, voteHandler.Submit)))

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint. {$} keeps this an exact match on "/" so it cannot
	// shadow the method checks of the routes above.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("questboard API v1"))
	})

	return mux
}

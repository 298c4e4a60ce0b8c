// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ method routing.

# Routes

	GET  /health          liveness
	GET  /health/db       datastore reachability (via Pinger)
	GET  /campaigns       catalog search
	GET  /campaigns/{slug} single published campaign
	POST /vote            anonymous vote submission (rate limited)
	GET  /metrics         Prometheus metrics

New wires handlers to services; the caller supplies the catalog and
voting services plus an optional Pinger (usually the *sqlx.DB). Tests
pass the in-memory store and a nil Pinger.
*/
package router

// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Questboard API server.

Questboard is a campaign catalog with anonymous voting: a searchable,
filterable, faceted, paginated list of tabletop-RPG campaign listings,
plus a one-vote-per-fingerprint voting endpoint.

# Starting the Server

Configuration comes from environment variables (a .env file is loaded
when present); every setting has a default:

	DB_HOST=localhost DB_NAME=questboard go run .

# Configuration

  - SERVER_PORT / SERVER_HOST: listen address (default 0.0.0.0:8080)
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSL_MODE
  - VOTE_RATE_PER_MINUTE / VOTE_BURST: per-IP vote rate limit

# Architecture

The server wires stateless services over injected datastore ports:

  - catalog: the query pipeline (filter → facets → aggregate → sort → page)
  - voting: anonymous vote submission with hash-based deduplication
  - store: datastore ports, Postgres adapter, in-memory test adapter
  - anonymize: one-way hashing of voter metadata
  - handlers, router, middleware: HTTP surface
  - config, db, metrics: environment config, schema, Prometheus

See package documentation for each component.
*/
package main

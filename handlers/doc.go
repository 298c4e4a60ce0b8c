// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Questboard API.

# Handler Types

Each handler is a struct holding its service dependency, created via a
constructor:

	campaignHandler := handlers.NewCampaignHandler(catalogService)
	voteHandler := handlers.NewVoteHandler(votingService)

# Catalog

	GET /campaigns        → Search (filter, facet, sort, paginate)
	GET /campaigns/{slug} → GetBySlug

Search accepts query, tags (comma-separated), sort (popular | new |
title | duration | players | age), page, durationMin/Max,
playersMin/Max, age, and statuses (comma-separated visibility
override). ParseFilters is exported so tests can exercise parameter
parsing directly; invalid numeric bounds are silently dropped, never
errors.

# Voting

	POST /vote → Submit

Body: {"campaignId": ..., "fingerprint": ...}. Client IP and user
agent are derived from request headers, hashed, and stored with the
vote. Responses: 200 on success, 400 malformed, 404 unknown or
unpublished campaign (indistinguishable on purpose), 409 duplicate,
500 upstream failure.
*/
package handlers

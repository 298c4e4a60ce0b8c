/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: campaignId, fingerprint

# Response Types

Types for JSON responses:

  - SearchResponse: items, total, page, pageSize, facets
  - SubmitVoteResponse: success
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Campaign: a catalog listing with descriptive and categorical metadata
  - CatalogItem: Campaign plus its rolling 30-day vote count (votes30d)
  - CampaignDetail: Campaign plus its vote count for single lookups (votes)
  - Vote: an accepted anonymous vote; only hashes, never raw values
  - VoteAggregateRow: (campaign_id, votes) pair from the aggregator
  - Filters: request-scoped search parameters
  - Facets: distinct values and numeric ranges over a filtered set

# Constants

Status values:

	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"

Sort keys:

	SortPopular, SortNew, SortTitle, SortDuration, SortPlayers, SortAge

# Filter Semantics

Filters.Matches implements the catalog predicate: the default
visibility is published-only unless Statuses is set explicitly, text
search is a case-insensitive substring match OR'd across title and
short description, tags use containment (every requested tag must be
present), numeric ranges are inclusive, and age is exact equality.
The memory store filters with Matches directly; the Postgres store
expresses the same predicate in SQL.
*/
package models

// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the datastore ports and their two adapters.

# Interfaces

  - CampaignStore: filtered listing, slug lookup, published existence
  - VoteStore: duplicate check and insert for anonymous votes
  - VoteAggregator: batched rolling 30-day vote counts

The catalog and voting services depend only on these interfaces, so
the real backend can be swapped for a fake in tests.

# Postgres Adapter

NewPostgres wraps a *sqlx.DB. Filter predicates are pushed down to SQL
(ILIKE for text, @> for tag containment, ANY for status sets), votes
carry a UNIQUE (campaign_id, fingerprint_hash) index mapped to
ErrDuplicateVote, and aggregation is a grouped LEFT JOIN over the last
30 days ordered by count:

	pg := store.NewPostgres(db)
	campaigns, err := pg.ListCampaigns(ctx, filters)

# Memory Adapter

NewMemory is the test seam: a mutex-guarded in-process store whose
filtering reuses models.Filters.Matches and whose aggregation order
mirrors the SQL (votes desc, id asc). FailWith injects an error on
every operation to exercise upstream-failure paths.

# Ordering Contract

AggregateVotes row order is part of the contract: the catalog's
"popular" sort is whatever order the aggregator returns, so both
adapters emit one row per requested id, most voted first.
*/
package store

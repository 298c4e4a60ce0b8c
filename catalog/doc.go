// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog implements the campaign catalog query pipeline.

# Pipeline

Search runs one request through six steps, in order:

 1. Fetch the full filtered set from the CampaignStore (visibility,
    text, tags, numeric ranges, age; no pagination at this stage).
 2. Compute facets over that entire set: sorted distinct tags,
    statuses and ages, plus {min,max} of duration and player counts.
 3. Issue ONE batched VoteAggregator call with every filtered id.
 4. Sort the full id list.
 5. Slice the requested page (fixed PageSize of 10; page clamped to a
    minimum of 1, a page past the end is an empty result, not an error).
 6. Merge vote counts into the page items (absent id → 0 votes).

Facets intentionally precede pagination: filtering to one tag must not
shrink a facet range below the true min/max of the still-matching set.

# Sorting

	new       created_at descending
	title     lexical ascending
	duration  duration_hours ascending, missing treated as 0
	players   players_min ascending, missing treated as 0
	age       leading digits of the age label ("16+" → 16), missing → 0
	popular   the aggregator's own row order (the default)

All sorts are stable. The "popular" order is deliberately delegated:
the service never recomputes popularity, it trusts the aggregator.

# Single Lookup

GetBySlug fetches one published campaign and merges its vote count.
A draft and a nonexistent slug both return store.ErrNotFound, so the
caller cannot tell them apart, which keeps unpublished campaigns
unenumerable.

# Failure

Any store or aggregator error fails the whole request; there are no
partial results and no retries at this layer.
*/
package catalog

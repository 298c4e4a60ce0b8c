// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements anonymous one-vote-per-fingerprint submission.

# Flow

Submit runs each vote through a fixed sequence:

 1. Reject empty campaignId or fingerprint (ErrMalformed).
 2. The campaign must exist AND be published. Both failures return the
    same ErrCampaignNotFound so drafts cannot be discovered by voting
    against their ids.
 3. Hash the fingerprint (SHA-256 hex via package anonymize).
 4. Reject if a vote with that (campaign_id, fingerprint_hash) pair
    exists (ErrAlreadyVoted).
 5. Insert the vote with hashed fingerprint, hashed IP, and hashed
    user agent (nil when the header was absent).

# Duplicate Detection

The check-then-insert pair is not atomic on its own; two identical
concurrent submissions can both pass step 4. The votes table carries a
UNIQUE (campaign_id, fingerprint_hash) index, so the loser of that
race gets store.ErrDuplicateVote from the insert, which Submit maps to
the same ErrAlreadyVoted the explicit check produces.

# Privacy

Raw fingerprint, IP, and user-agent values never reach storage; only
their one-way hashes do. That is enough for deduplication and abuse
review without holding identifying data.
*/
package voting

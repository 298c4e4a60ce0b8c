// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package anonymize provides one-way hashing for voter metadata.

Raw fingerprints, IP addresses, and user-agent strings are never
persisted. Every stored field is an irreversible SHA-256 hex digest:

	hash := anonymize.Hash(fingerprint)

The hash is deterministic and unsalted: the same fingerprint always
produces the same digest, which is what makes the duplicate-vote
existence check on (campaign_id, fingerprint_hash) work. Reversing a
digest back to a fingerprint or IP is not feasible, which bounds the
privacy exposure of the votes table to the hashes themselves.

HashOrNil handles nullable fields:

	uaHash := anonymize.HashOrNil(r.UserAgent()) // nil when header absent
*/
package anonymize

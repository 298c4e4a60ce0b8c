// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles PostgreSQL schema creation.

CreateSchema is idempotent (IF NOT EXISTS everywhere) and runs at
server startup:

	if err := db.CreateSchema(conn); err != nil { ... }

# Tables

campaigns:

  - id (primary key), slug (unique)
  - status: draft | published | archived (CHECK constraint)
  - title, short_description
  - tags: TEXT[] with a GIN index for @> containment queries
  - duration_hours, players_min, players_max, age, cover_url (nullable)
  - created_at

votes:

  - id (primary key), campaign_id (cascading foreign key)
  - fingerprint_hash, ip_hash, user_agent_hash (nullable); hashes only
  - created_at, indexed with campaign_id for the 30-day aggregation
  - UNIQUE (campaign_id, fingerprint_hash): one vote per fingerprint
    per campaign, enforced even when concurrent submissions race past
    the application-level existence check
*/
package db

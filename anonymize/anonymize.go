// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package anonymize

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the lowercase hex SHA-256 digest of value. It is the
// single one-way hash used for every persisted anonymized field
// (fingerprint, IP, user agent), so identical inputs always collide
// and duplicate-vote detection stays stable across requests.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// HashOrNil hashes value, or returns nil for the empty string. Used
// for nullable fields such as the user-agent hash.
func HashOrNil(value string) *string {
	if value == "" {
		return nil
	}
	h := Hash(value)
	return &h
}

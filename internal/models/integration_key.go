package models

import (
	"database/sql"
	"time"
)

// IntegrationKey is a machine credential used by the POS to post events.
type IntegrationKey struct {
	KeyID      string       `db:"key_id"`
	Name       string       `db:"name"`
	Prefix     string       `db:"prefix"`
	KeyHash    string       `db:"key_hash"`
	LastUsedAt sql.NullTime `db:"last_used_at"`
	ExpiresAt  sql.NullTime `db:"expires_at"`
	RevokedAt  sql.NullTime `db:"revoked_at"`
	CreatedAt  time.Time    `db:"created_at"`
	CreatedBy  string       `db:"created_by"`
}

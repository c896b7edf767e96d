package domain

import "time"

// IntegrationKey authenticates a POS event producer (register, shipment intake, cash drawer).
type IntegrationKey struct {
	KeyID      string     `json:"keyID"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	KeyHash    string     `json:"-"` // Never expose the hash in JSON responses
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	CreatedBy  string     `json:"createdBy"`
}

// IsExpired checks if the key has expired
func (k *IntegrationKey) IsExpired() bool {
	if k.ExpiresAt == nil {
		return false
	}
	return k.ExpiresAt.Before(time.Now())
}

// IsUsable reports whether the key is neither revoked nor expired.
func (k *IntegrationKey) IsUsable() bool {
	return k.RevokedAt == nil && !k.IsExpired()
}

// Actor is the identity recorded on ledger rows written with this key.
func (k *IntegrationKey) Actor() string {
	return "integration:" + k.KeyID
}

// UpdateLastUsed updates the LastUsedAt timestamp to the current time
func (k *IntegrationKey) UpdateLastUsed() {
	now := time.Now()
	k.LastUsedAt = &now
}

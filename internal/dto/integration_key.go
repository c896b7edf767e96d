package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// CreateIntegrationKeyRequest represents the request to create a new integration key
type CreateIntegrationKeyRequest struct {
	Name      string `json:"name" binding:"required,min=3,max=100"`
	ExpiresIn int64  `json:"expiresIn,omitempty"` // Duration in seconds, 0 means no expiration
}

// IntegrationKeyResponse represents an integration key in API responses
type IntegrationKeyResponse struct {
	KeyID      string     `json:"keyID"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	CreatedBy  string     `json:"createdBy"`
}

// CreateIntegrationKeyResponse includes the plaintext key, shown only once
type CreateIntegrationKeyResponse struct {
	IntegrationKeyResponse
	Key string `json:"key"`
}

// ToIntegrationKeyResponse converts a domain key to its response
func ToIntegrationKeyResponse(k *domain.IntegrationKey) IntegrationKeyResponse {
	return IntegrationKeyResponse{
		KeyID:      k.KeyID,
		Name:       k.Name,
		Prefix:     k.Prefix,
		LastUsedAt: k.LastUsedAt,
		ExpiresAt:  k.ExpiresAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
		CreatedBy:  k.CreatedBy,
	}
}

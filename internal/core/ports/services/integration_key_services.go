package services

import (
	"context"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// IntegrationKeySvc defines operations for POS integration key management
type IntegrationKeySvc interface {
	// CreateKey generates a new key.
	// Returns the plaintext key (only shown once) and the key details
	CreateKey(ctx context.Context, name string, expiresIn *time.Duration, actor string) (string, *domain.IntegrationKey, error)

	// ListKeys returns every integration key
	ListKeys(ctx context.Context) ([]domain.IntegrationKey, error)

	// RevokeKey disables a key
	RevokeKey(ctx context.Context, keyID string) error

	// ValidateKey checks if a key is valid and returns it
	// Updates the last_used_at timestamp if the key is valid
	ValidateKey(ctx context.Context, plaintext string) (*domain.IntegrationKey, error)
}

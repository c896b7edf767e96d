package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// IntegrationKeyRepository defines the interface for integration key data access operations
type IntegrationKeyRepository interface {
	// Create persists a new key, filling in KeyID and CreatedAt
	Create(ctx context.Context, key *domain.IntegrationKey) error

	// FindByID retrieves a key by its ID
	FindByID(ctx context.Context, keyID string) (*domain.IntegrationKey, error)

	// FindByPrefix finds the key whose public prefix matches (used for validation)
	FindByPrefix(ctx context.Context, prefix string) (*domain.IntegrationKey, error)

	// List retrieves every key, newest first
	List(ctx context.Context) ([]domain.IntegrationKey, error)

	// TouchLastUsed records a successful authentication
	TouchLastUsed(ctx context.Context, keyID string, at time.Time) error

	// Revoke marks a key as revoked
	Revoke(ctx context.Context, keyID string, at time.Time) error
}

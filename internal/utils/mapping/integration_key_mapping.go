package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToDomainIntegrationKey converts a model IntegrationKey to a domain IntegrationKey
func ToDomainIntegrationKey(m models.IntegrationKey) domain.IntegrationKey {
	return domain.IntegrationKey{
		KeyID:      m.KeyID,
		Name:       m.Name,
		Prefix:     m.Prefix,
		KeyHash:    m.KeyHash,
		LastUsedAt: TimePtr(m.LastUsedAt),
		ExpiresAt:  TimePtr(m.ExpiresAt),
		RevokedAt:  TimePtr(m.RevokedAt),
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// ToDomainIntegrationKeySlice converts a slice of model keys to domain keys
func ToDomainIntegrationKeySlice(ms []models.IntegrationKey) []domain.IntegrationKey {
	ds := make([]domain.IntegrationKey, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIntegrationKey(m)
	}
	return ds
}

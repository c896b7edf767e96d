package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIntegrationKeyRepository struct {
	BaseRepository
}

// newPgxIntegrationKeyRepository creates a new instance of PgxIntegrationKeyRepository
func newPgxIntegrationKeyRepository(db *pgxpool.Pool) portsrepo.IntegrationKeyRepository {
	return &PgxIntegrationKeyRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.IntegrationKeyRepository = (*PgxIntegrationKeyRepository)(nil)

const (
	integrationKeysTable = "integration_keys"

	selectIntegrationKeyFields = `
		key_id, name, prefix, key_hash,
		last_used_at, expires_at, revoked_at, created_at, created_by
	`

	insertIntegrationKeyQuery = `
		INSERT INTO ` + integrationKeysTable + ` (
			name, prefix, key_hash, expires_at, created_by
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING key_id, created_at
	`

	findIntegrationKeyByIDQuery = `
		SELECT ` + selectIntegrationKeyFields + `
		FROM ` + integrationKeysTable + `
		WHERE key_id = $1
	`

	findIntegrationKeyByPrefixQuery = `
		SELECT ` + selectIntegrationKeyFields + `
		FROM ` + integrationKeysTable + `
		WHERE prefix = $1
	`

	listIntegrationKeysQuery = `
		SELECT ` + selectIntegrationKeyFields + `
		FROM ` + integrationKeysTable + `
		ORDER BY created_at DESC
	`

	touchIntegrationKeyQuery = `
		UPDATE ` + integrationKeysTable + `
		SET last_used_at = $2
		WHERE key_id = $1
	`

	revokeIntegrationKeyQuery = `
		UPDATE ` + integrationKeysTable + `
		SET revoked_at = $2
		WHERE key_id = $1 AND revoked_at IS NULL
	`
)

func scanIntegrationKey(row pgx.Row) (models.IntegrationKey, error) {
	var m models.IntegrationKey
	err := row.Scan(
		&m.KeyID,
		&m.Name,
		&m.Prefix,
		&m.KeyHash,
		&m.LastUsedAt,
		&m.ExpiresAt,
		&m.RevokedAt,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// Create persists a new key, filling in KeyID and CreatedAt
func (r *PgxIntegrationKeyRepository) Create(ctx context.Context, key *domain.IntegrationKey) error {
	if key == nil {
		return errors.New("key cannot be nil")
	}
	err := r.Pool.QueryRow(ctx, insertIntegrationKeyQuery,
		key.Name,
		key.Prefix,
		key.KeyHash,
		mapping.NullTime(key.ExpiresAt),
		key.CreatedBy,
	).Scan(&key.KeyID, &key.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to create integration key", err)
	}
	return nil
}

// FindByID retrieves a key by its ID
func (r *PgxIntegrationKeyRepository) FindByID(ctx context.Context, keyID string) (*domain.IntegrationKey, error) {
	m, err := scanIntegrationKey(r.Pool.QueryRow(ctx, findIntegrationKeyByIDQuery, keyID))
	if err != nil {
		return nil, wrapNotFound(err, "integration key "+keyID)
	}
	key := mapping.ToDomainIntegrationKey(m)
	return &key, nil
}

// FindByPrefix finds the key whose public prefix matches
func (r *PgxIntegrationKeyRepository) FindByPrefix(ctx context.Context, prefix string) (*domain.IntegrationKey, error) {
	m, err := scanIntegrationKey(r.Pool.QueryRow(ctx, findIntegrationKeyByPrefixQuery, prefix))
	if err != nil {
		return nil, wrapNotFound(err, "integration key")
	}
	key := mapping.ToDomainIntegrationKey(m)
	return &key, nil
}

// List retrieves every key, newest first
func (r *PgxIntegrationKeyRepository) List(ctx context.Context) ([]domain.IntegrationKey, error) {
	rows, err := r.Pool.Query(ctx, listIntegrationKeysQuery)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list integration keys", err)
	}
	defer rows.Close()

	var ms []models.IntegrationKey
	for rows.Next() {
		m, err := scanIntegrationKey(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan integration key", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating integration keys", err)
	}
	return mapping.ToDomainIntegrationKeySlice(ms), nil
}

// TouchLastUsed records a successful authentication
func (r *PgxIntegrationKeyRepository) TouchLastUsed(ctx context.Context, keyID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, touchIntegrationKeyQuery, keyID, at)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update integration key", err)
	}
	return expectOneRow(tag, "integration key "+keyID)
}

// Revoke marks a key as revoked
func (r *PgxIntegrationKeyRepository) Revoke(ctx context.Context, keyID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, revokeIntegrationKeyQuery, keyID, at)
	if err != nil {
		return apperrors.NewAppError(500, "failed to revoke integration key", err)
	}
	return expectOneRow(tag, "integration key "+keyID)
}

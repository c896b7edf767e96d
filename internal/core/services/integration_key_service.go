package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
)

const integrationKeyScheme = "posk"

var errInvalidIntegrationKey = fmt.Errorf("%w: invalid integration key", apperrors.ErrUnauthorized)

// integrationKeyService implements the IntegrationKeySvc interface
type integrationKeyService struct {
	BaseService
	keyRepo repositories.IntegrationKeyRepository
	now     func() time.Time
}

// IntegrationKeyServiceOption is a functional option for configuring the key service
type IntegrationKeyServiceOption func(*integrationKeyService)

// WithIntegrationKeyClock overrides the clock used for expiry and last-used stamps.
func WithIntegrationKeyClock(now func() time.Time) IntegrationKeyServiceOption {
	return func(s *integrationKeyService) {
		s.now = now
	}
}

// NewIntegrationKeyService creates a new instance of integrationKeyService
func NewIntegrationKeyService(keyRepo repositories.IntegrationKeyRepository, options ...IntegrationKeyServiceOption) portssvc.IntegrationKeySvc {
	svc := &integrationKeyService{
		keyRepo: keyRepo,
		now:     time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.IntegrationKeySvc = (*integrationKeyService)(nil)

// CreateKey generates a new key of the form posk_<prefix>_<secret>.
func (s *integrationKeyService) CreateKey(ctx context.Context, name string, expiresIn *time.Duration, actor string) (string, *domain.IntegrationKey, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil, fmt.Errorf("%w: key name is required", apperrors.ErrValidation)
	}
	if expiresIn != nil && *expiresIn <= 0 {
		return "", nil, fmt.Errorf("%w: expiry must be in the future", apperrors.ErrValidation)
	}

	prefix, secret, err := generateKeyParts()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate key: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash key: %w", err)
	}

	var expiresAt *time.Time
	if expiresIn != nil {
		expiry := s.now().Add(*expiresIn)
		expiresAt = &expiry
	}

	key := &domain.IntegrationKey{
		Name:      name,
		Prefix:    prefix,
		KeyHash:   string(hash),
		ExpiresAt: expiresAt,
		CreatedBy: actor,
	}
	if err := s.keyRepo.Create(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to save integration key", slog.String("name", name))
		return "", nil, fmt.Errorf("failed to save key: %w", err)
	}

	s.LogInfo(ctx, "Integration key created", slog.String("key_id", key.KeyID), slog.String("prefix", prefix))
	// The plaintext is only available here.
	return fmt.Sprintf("%s_%s_%s", integrationKeyScheme, prefix, secret), key, nil
}

func (s *integrationKeyService) ListKeys(ctx context.Context) ([]domain.IntegrationKey, error) {
	keys, err := s.keyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	if keys == nil {
		return []domain.IntegrationKey{}, nil
	}
	return keys, nil
}

func (s *integrationKeyService) RevokeKey(ctx context.Context, keyID string) error {
	key, err := s.keyRepo.FindByID(ctx, keyID)
	if err != nil {
		return err
	}
	if key.RevokedAt != nil {
		return fmt.Errorf("%w: key already revoked", apperrors.ErrConflict)
	}
	if err := s.keyRepo.Revoke(ctx, keyID, s.now()); err != nil {
		return fmt.Errorf("failed to revoke key: %w", err)
	}
	s.LogInfo(ctx, "Integration key revoked", slog.String("key_id", keyID))
	return nil
}

// ValidateKey checks the key against its stored hash and records the use.
func (s *integrationKeyService) ValidateKey(ctx context.Context, plaintext string) (*domain.IntegrationKey, error) {
	parts := strings.SplitN(plaintext, "_", 3)
	if len(parts) != 3 || parts[0] != integrationKeyScheme || parts[1] == "" || parts[2] == "" {
		return nil, errInvalidIntegrationKey
	}

	key, err := s.keyRepo.FindByPrefix(ctx, parts[1])
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errInvalidIntegrationKey
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(key.KeyHash), []byte(parts[2])); err != nil {
		return nil, errInvalidIntegrationKey
	}
	if key.RevokedAt != nil {
		return nil, fmt.Errorf("%w: integration key has been revoked", apperrors.ErrUnauthorized)
	}
	if key.ExpiresAt != nil && key.ExpiresAt.Before(s.now()) {
		return nil, fmt.Errorf("%w: integration key has expired", apperrors.ErrUnauthorized)
	}

	now := s.now()
	if err := s.keyRepo.TouchLastUsed(ctx, key.KeyID, now); err != nil {
		s.LogError(ctx, err, "Failed to record integration key use", slog.String("key_id", key.KeyID))
	} else {
		key.LastUsedAt = &now
	}
	return key, nil
}

// generateKeyParts returns a public hex prefix and a URL-safe secret.
func generateKeyParts() (string, string, error) {
	p := make([]byte, 4)
	if _, err := rand.Read(p); err != nil {
		return "", "", err
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	return hex.EncodeToString(p), base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b), nil
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/pos")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/pos", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "pos-ledger", cfg.JWTIssuer)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, InventorySourcePostgres, cfg.InventorySource)
	for _, role := range domain.AccountRoles {
		assert.Equal(t, domain.DefaultRoleAccountNumbers[role], cfg.AccountRoles[role], "role %s", role)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("INVENTORY_SOURCE", "SQLite")
	t.Setenv(RoleEnvKey(domain.RoleCash), "1005")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, InventorySourceSQLite, cfg.InventorySource)
	assert.Equal(t, "1005", cfg.AccountRoles[domain.RoleCash])
}

func TestLoadConfigFallsBackOnBadValues(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "soon")
	t.Setenv("INVENTORY_SOURCE", "mongo")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, InventorySourcePostgres, cfg.InventorySource)
}

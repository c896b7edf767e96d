package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// Inventory valuation sources for the balance sheet.
const (
	InventorySourcePostgres = "postgres"
	InventorySourceSQLite   = "sqlite"
	InventorySourceNone     = "none"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	RateLimit          string   // ulule/limiter formatted, e.g. "300-M"

	PosthogAPIKey   string
	PosthogEndpoint string

	InventorySource     string
	InventorySQLitePath string

	// AccountRoles binds logical ledger roles to account numbers.
	AccountRoles domain.RoleAccountNumbers
}

// RoleEnvKey returns the environment key that overrides a role's account number.
func RoleEnvKey(role domain.AccountRole) string {
	return "ACCOUNT_ROLE_" + string(role)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "pos-ledger")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("INVENTORY_SOURCE", InventorySourcePostgres)
	v.SetDefault("INVENTORY_SQLITE_PATH", "pos.db")
	for _, role := range domain.AccountRoles {
		v.SetDefault(RoleEnvKey(role), domain.DefaultRoleAccountNumbers[role])
	}

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.JWTSecret = v.GetString("JWT_SECRET")
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")
	cfg.InventorySQLitePath = v.GetString("INVENTORY_SQLITE_PATH")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.InventorySource = strings.ToLower(v.GetString("INVENTORY_SOURCE"))
	switch cfg.InventorySource {
	case InventorySourcePostgres, InventorySourceSQLite, InventorySourceNone:
	default:
		log.Printf("Warning: unknown INVENTORY_SOURCE %q. Defaulting to %s.\n", cfg.InventorySource, InventorySourcePostgres)
		cfg.InventorySource = InventorySourcePostgres
	}

	cfg.AccountRoles = domain.RoleAccountNumbers{}
	for _, role := range domain.AccountRoles {
		cfg.AccountRoles[role] = v.GetString(RoleEnvKey(role))
	}

	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET is the default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	return cfg, nil
}

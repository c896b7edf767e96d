package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// IntegrationKeyHeader carries a POS integration key.
const IntegrationKeyHeader = "x-api-key"

// IntegrationKeyAuth authenticates requests that present an integration key.
// Requests without the header fall through to the JWT middleware.
func IntegrationKeyAuth(keySvc services.IntegrationKeySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(IntegrationKeyHeader)
		if raw == "" {
			c.Next()
			return
		}

		key, err := keySvc.ValidateKey(c.Request.Context(), raw)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Integration key rejected", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid integration key"})
			return
		}

		setActor(c, key.Actor(), AuthMethodIntegrationKey)
		c.Next()
	}
}

// RequireJWT rejects requests authenticated by anything other than an operator JWT.
func RequireJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetAuthMethod(c) != AuthMethodJWT {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Operator credentials required"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

const (
	// userIDKey holds the authenticated actor: a JWT subject or "integration:<key id>".
	userIDKey = contextKey("userID")
	// authMethodKey records which middleware authenticated the request.
	authMethodKey = contextKey("authMethod")
)

const (
	AuthMethodJWT            = "jwt"
	AuthMethodIntegrationKey = "integration_key"
)

// setActor stores the authenticated actor in the request context and enriches the logger.
func setActor(c *gin.Context, actor, method string) {
	logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("actor", actor))
	ctx := context.WithValue(c.Request.Context(), userIDKey, actor)
	ctx = WithLogger(ctx, logger)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), actor)
	c.Set(string(authMethodKey), method)
}

// GetUserIDFromContext retrieves the authenticated actor from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	return userID, ok
}

// GetAuthMethod reports how the request was authenticated, if at all.
func GetAuthMethod(c *gin.Context) string {
	return c.GetString(string(authMethodKey))
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
)

// integrationKeyHandler manages the keys POS registers authenticate with.
// Every route requires an operator JWT; a key cannot mint or revoke keys.
type integrationKeyHandler struct {
	keyService portssvc.IntegrationKeySvc
}

func registerIntegrationKeyRoutes(rg *gin.RouterGroup, keyService portssvc.IntegrationKeySvc) {
	h := &integrationKeyHandler{keyService: keyService}

	keys := rg.Group("/integration-keys", middleware.RequireJWT())
	{
		keys.POST("", h.createKey)
		keys.GET("", h.listKeys)
		keys.DELETE("/:id", h.revokeKey)
	}
}

// createKey godoc
// @Summary Create an integration key
// @Description The plaintext key is returned once and never stored
// @Tags integration-keys
// @Accept  json
// @Produce  json
// @Param   key body dto.CreateIntegrationKeyRequest true "Key details"
// @Success 201 {object} dto.CreateIntegrationKeyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Operator token required"
// @Security BearerAuth
// @Router /integration-keys [post]
func (h *integrationKeyHandler) createKey(c *gin.Context) {
	var req dto.CreateIntegrationKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var expiresIn *time.Duration
	if req.ExpiresIn > 0 {
		d := time.Duration(req.ExpiresIn) * time.Second
		expiresIn = &d
	}

	plaintext, key, err := h.keyService.CreateKey(c.Request.Context(), req.Name, expiresIn, actor)
	if err != nil {
		respondError(c, err, "Failed to create integration key")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Integration key created", slog.String("key_id", key.KeyID), slog.String("prefix", key.Prefix))
	c.JSON(http.StatusCreated, dto.CreateIntegrationKeyResponse{
		IntegrationKeyResponse: dto.ToIntegrationKeyResponse(key),
		Key:                    plaintext,
	})
}

// listKeys godoc
// @Summary List integration keys
// @Tags integration-keys
// @Produce  json
// @Success 200 {array} dto.IntegrationKeyResponse
// @Security BearerAuth
// @Router /integration-keys [get]
func (h *integrationKeyHandler) listKeys(c *gin.Context) {
	keys, err := h.keyService.ListKeys(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list integration keys")
		return
	}
	res := make([]dto.IntegrationKeyResponse, len(keys))
	for i := range keys {
		res[i] = dto.ToIntegrationKeyResponse(&keys[i])
	}
	c.JSON(http.StatusOK, res)
}

// revokeKey godoc
// @Summary Revoke an integration key
// @Tags integration-keys
// @Param   id path string true "Key ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Key not found"
// @Failure 409 {object} map[string]string "Key already revoked"
// @Security BearerAuth
// @Router /integration-keys/{id} [delete]
func (h *integrationKeyHandler) revokeKey(c *gin.Context) {
	keyID := c.Param("id")
	if err := h.keyService.RevokeKey(c.Request.Context(), keyID); err != nil {
		respondError(c, err, "Failed to revoke integration key")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Integration key revoked", slog.String("key_id", keyID))
	c.Status(http.StatusNoContent)
}

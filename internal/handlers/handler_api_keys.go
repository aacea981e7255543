package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// apiKeyHandler manages the caller's own API keys.
type apiKeyHandler struct {
	apiKeyService portssvc.APIKeySvc
}

func newAPIKeyHandler(ks portssvc.APIKeySvc) *apiKeyHandler {
	return &apiKeyHandler{apiKeyService: ks}
}

func registerAPIKeyRoutes(rg *gin.RouterGroup, apiKeyService portssvc.APIKeySvc) {
	h := newAPIKeyHandler(apiKeyService)
	keys := rg.Group("/api-keys")
	{
		keys.POST("", h.createKey)
		keys.GET("", h.listKeys)
		keys.DELETE("/:id", h.revokeKey)
	}
}

// createKey godoc
// @Summary Mint an API key
// @Description The plaintext key is returned exactly once; store it safely
// @Tags api-keys
// @Accept json
// @Produce json
// @Param key body dto.CreateAPIKeyRequest true "Key details"
// @Success 201 {object} dto.CreateAPIKeyResponse
// @Failure 400 {object} map[string]string "Invalid expiry duration"
// @Security BearerAuth
// @Router /api-keys [post]
func (h *apiKeyHandler) createKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateAPIKeyRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	var expiresIn *time.Duration
	if req.ExpiresIn != "" {
		d, err := time.ParseDuration(req.ExpiresIn)
		if err != nil || d <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiresIn must be a positive duration such as 720h"})
			return
		}
		expiresIn = &d
	}

	plaintext, key, err := h.apiKeyService.CreateKey(c.Request.Context(), userID, req.Name, expiresIn)
	if err != nil {
		respondError(c, logger, err, "Failed to create API key")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateAPIKeyResponse{
		Key:       plaintext,
		KeyID:     key.KeyID,
		Name:      key.Name,
		Prefix:    key.Prefix,
		ExpiresAt: key.ExpiresAt,
	})
}

// listKeys godoc
// @Summary List the caller's API keys
// @Tags api-keys
// @Produce json
// @Success 200 {object} dto.ListAPIKeysResponse
// @Security BearerAuth
// @Router /api-keys [get]
func (h *apiKeyHandler) listKeys(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}

	keys, err := h.apiKeyService.ListKeys(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list API keys")
		return
	}
	c.JSON(http.StatusOK, dto.ListAPIKeysResponse{Keys: keys})
}

// revokeKey godoc
// @Summary Revoke one of the caller's API keys
// @Tags api-keys
// @Param id path string true "Key ID"
// @Success 204 "Key revoked"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /api-keys/{id} [delete]
func (h *apiKeyHandler) revokeKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.apiKeyService.RevokeKey(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to revoke API key")
		return
	}
	c.Status(http.StatusNoContent)
}

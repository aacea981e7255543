package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// respondError translates service errors into HTTP responses. Anything not
// recognized becomes a 500 with the fallback message so internal detail never
// leaks to clients.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindJSON binds the request body and writes the 400 response on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// requireIdentity pulls the authenticated user id from context, writing the
// 401 response when absent.
func requireIdentity(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// requireScope pulls the resolved tenant scope from context, writing the 403
// response when absent.
func requireScope(c *gin.Context) (domain.TenantScope, bool) {
	scope, ok := middleware.GetScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tenant scope resolved"})
		return "", false
	}
	return scope, true
}

// requireTenant pulls the caller's single-tenant scope. Owner requests that
// resolved to the all-tenants scope get a 400; writes need one tenant.
func requireTenant(c *gin.Context) (string, bool) {
	scope, ok := requireScope(c)
	if !ok {
		return "", false
	}
	if scope.IsAll() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A tenant must be selected for this operation"})
		return "", false
	}
	return string(scope), true
}

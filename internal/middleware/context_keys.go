package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

const (
	userIDKey      = contextKey("userID")
	roleKey        = contextKey("role")
	tenantScopeKey = contextKey("tenantScope")
)

// GetUserIDFromContext retrieves the authenticated user ID set by the auth
// middleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok
	}
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}

// GetRoleFromContext retrieves the authenticated user's role.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	if v, exists := c.Get(string(roleKey)); exists {
		role, ok := v.(domain.Role)
		return role, ok
	}
	if v := c.Request.Context().Value(roleKey); v != nil {
		role, ok := v.(domain.Role)
		return role, ok
	}
	return "", false
}

// GetScopeFromContext retrieves the resolved tenant scope. Handlers must not
// read tenant ids from anywhere else.
func GetScopeFromContext(c *gin.Context) (domain.TenantScope, bool) {
	if v, exists := c.Get(string(tenantScopeKey)); exists {
		scope, ok := v.(domain.TenantScope)
		return scope, ok
	}
	if v := c.Request.Context().Value(tenantScopeKey); v != nil {
		scope, ok := v.(domain.TenantScope)
		return scope, ok
	}
	return "", false
}

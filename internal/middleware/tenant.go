package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// TenantScopeMiddleware resolves the caller's tenant scope after auth.
//
// Tenant-bound users always get their own tenant; an X-Tenant-ID header from
// them is ignored. The SYSTEM_OWNER defaults to the all-tenants scope and may
// narrow to one tenant with X-Tenant-ID. Requests from tenant-bound users
// with no tenant of record are rejected.
func TenantScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		var scope domain.TenantScope
		if role == domain.RoleSystemOwner {
			scope = domain.TenantScopeAll
			if override := c.GetHeader("X-Tenant-ID"); override != "" {
				scope = domain.ScopeTenant(override)
			}
		} else {
			tenantID := c.GetString("claimsTenantID")
			if tenantID == "" {
				GetLoggerFromCtx(c.Request.Context()).Error("Tenant-bound user has no tenant claim")
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is not attached to a tenant"})
				return
			}
			scope = domain.ScopeTenant(tenantID)
		}

		c.Set(string(tenantScopeKey), scope)
		ctx := context.WithValue(c.Request.Context(), tenantScopeKey, scope)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles creates a middleware that rejects callers whose role is not in
// the allow list.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}
	return func(c *gin.Context) {
		role, ok := GetRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if _, permitted := allowedSet[role]; !permitted {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuthMiddleware authenticates requests carrying an API key header.
// Requests without the header fall through to the JWT middleware.
func APIKeyAuthMiddleware(apiKeySvc portssvc.APIKeySvc, userSvc portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(apiKeyHeader)
		if presented == "" {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())

		userID, err := apiKeySvc.ValidateKey(c.Request.Context(), presented)
		if err != nil {
			logger.Warn("API key validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("API key refers to unknown user", "user_id", userID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set("authMethod", "api_key")
		setAuthContext(c, user.UserID, user.Role, user.TenantID)
		c.Next()
	}
}

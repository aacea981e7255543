package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// authHandler handles the public authentication flows.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the public /auth routes. Logout is registered
// separately because it needs the authenticated identity.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
		auth.POST("/google", h.googleSignIn)
		auth.POST("/refresh", h.refresh)
	}
}

// login godoc
// @Summary Authenticate with username and password
// @Description Validates credentials and returns an access/refresh token pair with the role's visible views
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 403 {object} map[string]string "Tenant suspended"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Login failed")
		return
	}

	logger.Info("User logged in", slog.String("user_id", resp.User.UserID))
	c.JSON(http.StatusOK, resp)
}

// register godoc
// @Summary Register a new admin account
// @Description Creates an admin account and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.LoginResponse
// @Failure 409 {object} map[string]string "Username already taken"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	// Self-service registration creates a tenant-less admin; tenant binding
	// happens when the owner provisions the parish. Caller-supplied tenant
	// headers are ignored here, only the owner console may select a tenant.
	resp, err := h.authService.Register(c.Request.Context(), "", req)
	if err != nil {
		respondError(c, logger, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// googleSignIn godoc
// @Summary Authenticate with a Google ID token
// @Description Validates the token with Google and resolves or creates the local account
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Token validation failed"
// @Router /auth/google [post]
func (h *authHandler) googleSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleSignInRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.authService.GoogleSignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Google sign-in failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Description Rotates the refresh token; the previous one stops working
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "User id and refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Token refresh failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Invalidate the stored refresh token
// @Tags auth
// @Produce json
// @Success 204 "Logged out"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, logger, err, "Logout failed")
		return
	}
	c.Status(http.StatusNoContent)
}

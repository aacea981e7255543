package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/platform/config"
	"github.com/imani-cms/imani_backend/internal/utils"
)

const googleAuthProvider = "google"

// authService implements username/password, Google and refresh-token flows.
// Every flow funnels through issueTokenPair so the response shape and the
// refresh-token rotation behave identically.
type authService struct {
	BaseService
	cfg        *config.Config
	userSvc    portssvc.UserSvcFacade
	tenantRepo portrepo.TenantRepositoryFacade
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade, tenantRepo portrepo.TenantRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userSvc: userSvc, tenantRepo: tenantRepo}
}

// checkTenantUsable rejects logins into suspended tenants. Owner accounts
// carry no tenant and always pass.
func (s *authService) checkTenantUsable(ctx context.Context, user *domain.User) error {
	if user.TenantID == "" {
		return nil
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, user.TenantID)
	if err != nil {
		return err
	}
	if tenant.Status == domain.TenantSuspended {
		return fmt.Errorf("%w: tenant is suspended", apperrors.ErrForbidden)
	}
	return nil
}

// issueTokenPair mints an access token and a rotated refresh token for the
// user. Only the hash of the refresh token is persisted.
func (s *authService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	accessToken, err := utils.GenerateJWT(user, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", "user_id", user.UserID)
		return nil, err
	}
	tokenExpiry := time.Now().Add(s.cfg.JWTExpiryDuration)

	refreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userSvc.SetRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:            accessToken,
		TokenExpiresAt:   tokenExpiry,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: &refreshExpiry,
		User:             user,
		VisibleViews:     domain.VisibleViews(user.Role),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Password mismatch on login", "username", req.Username)
		return nil, apperrors.ErrUnauthorized
	}
	if err := s.checkTenantUsable(ctx, user); err != nil {
		return nil, err
	}
	return s.issueTokenPair(ctx, user)
}

func (s *authService) Register(ctx context.Context, tenantID string, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.CreateUser(ctx, tenantID, "", dto.CreateUserRequest{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     string(domain.RoleAdmin),
	})
	if err != nil {
		return nil, err
	}
	return s.issueTokenPair(ctx, user)
}

func (s *authService) GoogleSignIn(ctx context.Context, req dto.GoogleSignInRequest) (*dto.LoginResponse, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("%w: google sign-in is not configured", apperrors.ErrServiceUnavailable)
	}

	payload, err := idtoken.Validate(ctx, req.IDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogInfo(ctx, "Google ID token validation failed", "error", err.Error())
		return nil, apperrors.ErrUnauthorized
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: google token carries no email", apperrors.ErrValidation)
	}

	user, err := s.userSvc.FindOrCreateFederatedUser(ctx, googleAuthProvider, payload.Subject, email, name)
	if err != nil {
		return nil, err
	}
	if err := s.checkTenantUsable(ctx, user); err != nil {
		return nil, err
	}
	return s.issueTokenPair(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(req.RefreshToken, user.RefreshTokenHash) {
		s.LogInfo(ctx, "Refresh token mismatch", "user_id", req.UserID)
		return nil, apperrors.ErrUnauthorized
	}
	if err := s.checkTenantUsable(ctx, user); err != nil {
		return nil, err
	}
	return s.issueTokenPair(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.userSvc.ClearRefreshToken(ctx, userID)
}

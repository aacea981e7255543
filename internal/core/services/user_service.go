package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portrepo.UserRepository
	auditSvc portssvc.AuditSvcFacade
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// NewUserService creates the user service.
func NewUserService(userRepo portrepo.UserRepository, auditSvc portssvc.AuditSvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, auditSvc: auditSvc}
}

func parseRole(raw string) (domain.Role, error) {
	role := domain.Role(raw)
	if !role.IsValid() {
		return "", fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, raw)
	}
	return role, nil
}

func (s *userService) CreateUser(ctx context.Context, tenantID, actorUserID string, req dto.CreateUserRequest) (*domain.User, error) {
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}
	// The platform operator account is provisioned out of band, never through
	// the tenant-facing API.
	if role == domain.RoleSystemOwner {
		return nil, fmt.Errorf("%w: role %q cannot be assigned", apperrors.ErrValidation, req.Role)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: username %q already taken", apperrors.ErrDuplicate, req.Username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		TenantID:     tenantID,
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		MemberID:     req.MemberID,
		AuditFields:  domain.NewAuditFields(actorUserID, now),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User created", "user_id", user.UserID, "role", string(role))
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "user.create",
		EntityType: "user", EntityID: user.UserID, Detail: string(role), At: now,
	})
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) FindOrCreateFederatedUser(ctx context.Context, provider, providerUserID, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// Link the federated identity to an existing account on matching email,
	// otherwise create a fresh MEMBER account.
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		existing.AuthProvider = provider
		existing.ProviderUserID = providerUserID
		existing.Touch(existing.UserID, time.Now())
		if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	created := domain.User{
		UserID:         uuid.NewString(),
		Username:       federatedUsername(email),
		Name:           name,
		Email:          email,
		Role:           domain.RoleMember,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields:    domain.NewAuditFields("", now),
	}
	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Federated user created", "user_id", created.UserID, "provider", provider)
	return &created, nil
}

// federatedUsername derives a username from the federated email local part.
func federatedUsername(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func (s *userService) ListUsers(ctx context.Context, scope domain.TenantScope) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx, scope)
}

func (s *userService) UpdateUser(ctx context.Context, scope domain.TenantScope, userID, actorUserID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !scope.Matches(user.TenantID) {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		role, err := parseRole(*req.Role)
		if err != nil {
			return nil, err
		}
		if role == domain.RoleSystemOwner {
			return nil, fmt.Errorf("%w: role %q cannot be assigned", apperrors.ErrValidation, *req.Role)
		}
		user.Role = role
	}
	if req.MemberID != nil {
		user.MemberID = req.MemberID
	}
	user.Touch(actorUserID, time.Now())

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: user.TenantID, ActorID: actorUserID, Action: "user.update",
		EntityType: "user", EntityID: userID, At: time.Now(),
	})
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, scope domain.TenantScope, userID, actorUserID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !scope.Matches(user.TenantID) {
		return apperrors.ErrNotFound
	}

	now := time.Now()
	if err := s.userRepo.MarkUserDeleted(ctx, userID, now, actorUserID); err != nil {
		return err
	}

	s.LogInfo(ctx, "User deleted", "user_id", userID)
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: user.TenantID, ActorID: actorUserID, Action: "user.delete",
		EntityType: "user", EntityID: userID, At: now,
	})
	return nil
}

func (s *userService) SetRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiry)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

package memory

import (
	"context"
	"strings"
	"time"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
)

// UserRepository implements the user port over a memstore collection.
type UserRepository struct {
	stores *Stores
}

var _ portrepo.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new in-memory user repository.
func NewUserRepository(s *Stores) *UserRepository {
	return &UserRepository{stores: s}
}

// SaveUser persists a new user.
func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	if _, ok := r.stores.Users.Add(user); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

// FindUserByID retrieves a non-deleted user by id.
func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	user, ok := r.stores.Users.Get(userID)
	if !ok || user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

// FindUserByUsername retrieves a non-deleted user by username.
func (r *UserRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.findOne(func(u domain.User) bool {
		return strings.EqualFold(u.Username, username)
	})
}

// FindUserByEmail retrieves a non-deleted user by email.
func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.findOne(func(u domain.User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

// FindUserByProviderDetails retrieves a user by federated identity.
func (r *UserRepository) FindUserByProviderDetails(_ context.Context, authProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(func(u domain.User) bool {
		return u.AuthProvider == authProvider && u.ProviderUserID == providerUserID
	})
}

// ListUsers retrieves the scoped, non-deleted users.
func (r *UserRepository) ListUsers(_ context.Context, scope domain.TenantScope) ([]domain.User, error) {
	return r.stores.Users.Filter(func(u domain.User) bool {
		return u.DeletedAt == nil && scope.Matches(u.TenantID)
	}), nil
}

// UpdateUser replaces a stored user.
func (r *UserRepository) UpdateUser(_ context.Context, user domain.User) error {
	if !r.stores.Users.Replace(user.UserID, user) {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken stores a hashed refresh token and its expiry.
func (r *UserRepository) UpdateRefreshToken(_ context.Context, userID, refreshTokenHash string, expiry time.Time) error {
	ok := r.stores.Users.Update(userID, func(u domain.User) domain.User {
		u.RefreshTokenHash = refreshTokenHash
		u.RefreshTokenExpiryTime = &expiry
		return u
	})
	if !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

// ClearRefreshToken drops the stored refresh token.
func (r *UserRepository) ClearRefreshToken(_ context.Context, userID string) error {
	ok := r.stores.Users.Update(userID, func(u domain.User) domain.User {
		u.RefreshTokenHash = ""
		u.RefreshTokenExpiryTime = nil
		return u
	})
	if !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkUserDeleted soft-deletes a user.
func (r *UserRepository) MarkUserDeleted(_ context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	ok := r.stores.Users.Update(userID, func(u domain.User) domain.User {
		u.DeletedAt = &deletedAt
		u.Touch(deleterUserID, deletedAt)
		return u
	})
	if !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) findOne(pred func(domain.User) bool) (*domain.User, error) {
	matched := r.stores.Users.Filter(func(u domain.User) bool {
		return u.DeletedAt == nil && pred(u)
	})
	if len(matched) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &matched[0], nil
}

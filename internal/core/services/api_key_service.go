package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/utils"
)

// apiKeyPrefix marks keys minted by this service. The plaintext format is
// "ick_<keyID>.<secret>" so validation can look the record up directly
// instead of scanning every stored hash.
const apiKeyPrefix = "ick_"

type apiKeyService struct {
	BaseService
	keyRepo portrepo.APIKeyRepository
}

var _ portssvc.APIKeySvc = (*apiKeyService)(nil)

// NewAPIKeyService creates the API key service.
func NewAPIKeyService(keyRepo portrepo.APIKeyRepository) portssvc.APIKeySvc {
	return &apiKeyService{keyRepo: keyRepo}
}

func (s *apiKeyService) CreateKey(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIKey, error) {
	if userID == "" || name == "" {
		return "", nil, fmt.Errorf("%w: user id and key name are required", apperrors.ErrValidation)
	}

	secret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate key material: %w", err)
	}

	keyHash, err := utils.HashPassword(secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash key: %w", err)
	}

	var expiresAt *time.Time
	if expiresIn != nil {
		expiry := time.Now().Add(*expiresIn)
		expiresAt = &expiry
	}

	keyID := uuid.NewString()
	plaintext := apiKeyPrefix + keyID + "." + secret
	key := domain.APIKey{
		KeyID:     keyID,
		UserID:    userID,
		Name:      name,
		KeyHash:   keyHash,
		Prefix:    plaintext[:len(apiKeyPrefix)+8],
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := s.keyRepo.CreateAPIKey(ctx, key); err != nil {
		return "", nil, err
	}

	s.LogInfo(ctx, "API key created", "key_id", keyID, "user_id", userID)
	return plaintext, &key, nil
}

func (s *apiKeyService) ListKeys(ctx context.Context, userID string) ([]domain.APIKey, error) {
	return s.keyRepo.ListAPIKeysByUser(ctx, userID)
}

func (s *apiKeyService) RevokeKey(ctx context.Context, userID, keyID string) error {
	key, err := s.keyRepo.FindAPIKeyByID(ctx, keyID)
	if err != nil {
		return err
	}
	if key.UserID != userID {
		return apperrors.ErrNotFound
	}
	if key.RevokedAt != nil {
		return nil
	}

	now := time.Now()
	key.RevokedAt = &now
	if err := s.keyRepo.UpdateAPIKey(ctx, *key); err != nil {
		return err
	}
	s.LogInfo(ctx, "API key revoked", "key_id", keyID)
	return nil
}

func (s *apiKeyService) ValidateKey(ctx context.Context, presented string) (string, error) {
	keyID, secret, err := splitAPIKey(presented)
	if err != nil {
		return "", err
	}

	key, err := s.keyRepo.FindAPIKeyByID(ctx, keyID)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	if !key.IsUsable() {
		return "", apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(secret, key.KeyHash) {
		return "", apperrors.ErrUnauthorized
	}

	now := time.Now()
	key.LastUsedAt = &now
	if err := s.keyRepo.UpdateAPIKey(ctx, *key); err != nil {
		// Stamping last-used is best effort; the key itself checked out.
		s.LogError(ctx, err, "Failed to stamp API key last-used", "key_id", keyID)
	}
	return key.UserID, nil
}

func splitAPIKey(presented string) (keyID, secret string, err error) {
	rest, ok := strings.CutPrefix(presented, apiKeyPrefix)
	if !ok {
		return "", "", apperrors.ErrUnauthorized
	}
	keyID, secret, ok = strings.Cut(rest, ".")
	if !ok || keyID == "" || secret == "" {
		return "", "", apperrors.ErrUnauthorized
	}
	return keyID, secret, nil
}

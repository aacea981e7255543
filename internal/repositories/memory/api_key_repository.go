package memory

import (
	"context"
	"sort"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
)

// APIKeyRepository implements the API key port over a memstore collection.
type APIKeyRepository struct {
	stores *Stores
}

var _ portrepo.APIKeyRepository = (*APIKeyRepository)(nil)

// NewAPIKeyRepository creates a new in-memory API key repository.
func NewAPIKeyRepository(s *Stores) *APIKeyRepository {
	return &APIKeyRepository{stores: s}
}

func (r *APIKeyRepository) CreateAPIKey(_ context.Context, key domain.APIKey) error {
	if _, ok := r.stores.APIKeys.Add(key); !ok {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *APIKeyRepository) FindAPIKeyByID(_ context.Context, keyID string) (*domain.APIKey, error) {
	key, ok := r.stores.APIKeys.Get(keyID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &key, nil
}

func (r *APIKeyRepository) ListAPIKeysByUser(_ context.Context, userID string) ([]domain.APIKey, error) {
	keys := r.stores.APIKeys.Filter(func(k domain.APIKey) bool {
		return k.UserID == userID
	})
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].CreatedAt.After(keys[j].CreatedAt)
	})
	return keys, nil
}

func (r *APIKeyRepository) UpdateAPIKey(_ context.Context, key domain.APIKey) error {
	if !r.stores.APIKeys.Replace(key.KeyID, key) {
		return apperrors.ErrNotFound
	}
	return nil
}

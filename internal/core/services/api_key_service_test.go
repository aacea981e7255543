package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/services"
)

func TestAPIKeyLifecycle(t *testing.T) {
	repos := newTestRepos()
	svc := services.NewAPIKeyService(repos.APIKeyRepo)
	ctx := context.Background()

	plaintext, key, err := svc.CreateKey(ctx, "u1", "ci key", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plaintext, "ick_"))
	assert.NotEmpty(t, key.Prefix)

	userID, err := svc.ValidateKey(ctx, plaintext)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	keys, err := svc.ListKeys(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.NotNil(t, keys[0].LastUsedAt)

	require.NoError(t, svc.RevokeKey(ctx, "u1", key.KeyID))
	_, err = svc.ValidateKey(ctx, plaintext)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestRevokeKeyChecksOwnership(t *testing.T) {
	repos := newTestRepos()
	svc := services.NewAPIKeyService(repos.APIKeyRepo)
	ctx := context.Background()

	_, key, err := svc.CreateKey(ctx, "u1", "ci key", nil)
	require.NoError(t, err)

	err = svc.RevokeKey(ctx, "someone-else", key.KeyID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestValidateKeyRejectsMalformedInput(t *testing.T) {
	repos := newTestRepos()
	svc := services.NewAPIKeyService(repos.APIKeyRepo)
	ctx := context.Background()

	for _, presented := range []string{"", "garbage", "ick_nodot", "ick_.secret"} {
		_, err := svc.ValidateKey(ctx, presented)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized, presented)
	}
}

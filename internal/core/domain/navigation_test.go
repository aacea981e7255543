package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

func TestVisibleViewsEveryKnownRole(t *testing.T) {
	known := make(map[domain.ViewID]struct{}, len(domain.KnownViews))
	for _, v := range domain.KnownViews {
		known[v] = struct{}{}
	}

	for _, role := range domain.KnownRoles {
		t.Run(string(role), func(t *testing.T) {
			views := domain.VisibleViews(role)
			require.NotEmpty(t, views)

			for _, v := range views {
				_, ok := known[v]
				assert.True(t, ok, "view %q is not a known view id", v)
			}

			// Same input, same output, same order.
			assert.Equal(t, views, domain.VisibleViews(role))
		})
	}
}

func TestVisibleViewsUnknownRole(t *testing.T) {
	assert.Nil(t, domain.VisibleViews(domain.Role("JANITOR")))
}

func TestVisibleViewsReturnsACopy(t *testing.T) {
	views := domain.VisibleViews(domain.RoleTreasurer)
	require.NotEmpty(t, views)
	views[0] = domain.ViewID("tampered")

	assert.NotEqual(t, domain.ViewID("tampered"), domain.VisibleViews(domain.RoleTreasurer)[0])
}

func TestSecretaryKeepsMemberDirectoryAccess(t *testing.T) {
	assert.True(t, domain.CanSee(domain.RoleSecretary, domain.ViewMembers))
	assert.False(t, domain.CanSee(domain.RoleSecretary, domain.ViewFinance))
}

func TestOwnerSeesOnlyPlatformViews(t *testing.T) {
	for _, v := range domain.VisibleViews(domain.RoleSystemOwner) {
		if v == domain.ViewSettings {
			continue
		}
		assert.Contains(t, string(v), "platform-")
	}
}

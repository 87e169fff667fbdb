package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with normalized email", func(t *testing.T) {
		user, err := NewUser("  Buyer@Example.COM ", RoleBuyer)
		require.NoError(t, err)

		assert.Equal(t, "buyer@example.com", user.Email)
		assert.Equal(t, RoleBuyer, user.Role)
		assert.True(t, user.IsDeletable)
		assert.False(t, user.IsEmailVerified)
		assert.Len(t, user.GetDomainEvents(), 1)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", RoleBuyer)
		assert.Error(t, err)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewUser("   ", RoleBuyer)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("someone@example.com", Role("owner"))
		assert.Error(t, err)
	})
}

func TestNewBuyer(t *testing.T) {
	user, err := NewBuyer("jane@example.com", " Jane ", "Doe")
	require.NoError(t, err)

	assert.Equal(t, RoleBuyer, user.Role)
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.True(t, user.IsEmailVerified)
	assert.True(t, user.IsDeletable)
}

func TestNewSystemAdmin(t *testing.T) {
	admin, err := NewSystemAdmin("root@example.com")
	require.NoError(t, err)

	assert.Equal(t, RoleSuperAdmin, admin.Role)
	assert.True(t, admin.IsEmailVerified)
	assert.False(t, admin.IsDeletable)
	assert.Error(t, admin.EnsureDeletable())
}

func TestUser_ChangeRole(t *testing.T) {
	t.Run("changes role and bumps version", func(t *testing.T) {
		user, err := NewUser("seller@example.com", RoleBuyer)
		require.NoError(t, err)
		user.ClearDomainEvents()

		err = user.ChangeRole(RoleSeller)
		require.NoError(t, err)

		assert.Equal(t, RoleSeller, user.Role)
		assert.Equal(t, 2, user.GetVersion())
		assert.Len(t, user.GetDomainEvents(), 1)
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		user, err := NewUser("seller@example.com", RoleSeller)
		require.NoError(t, err)
		user.ClearDomainEvents()

		err = user.ChangeRole(RoleSeller)
		require.NoError(t, err)

		assert.Equal(t, 1, user.GetVersion())
		assert.Empty(t, user.GetDomainEvents())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		user, err := NewUser("seller@example.com", RoleBuyer)
		require.NoError(t, err)

		assert.Error(t, user.ChangeRole(Role("root")))
	})
}

func TestUser_CanImpersonate(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleBuyer, false},
		{RoleSeller, false},
		{RoleAdmin, true},
		{RoleSuperAdmin, true},
	}

	for _, tc := range cases {
		user, err := NewUser("user@example.com", tc.role)
		require.NoError(t, err)
		assert.Equal(t, tc.want, user.CanImpersonate(), "role %s", tc.role)
	}
}

func TestUser_FullName(t *testing.T) {
	user, err := NewBuyer("jane@example.com", "Jane", "Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.FullName())

	user.FirstName = ""
	user.LastName = ""
	assert.Equal(t, "jane@example.com", user.FullName())
}

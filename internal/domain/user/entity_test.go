//go:build unit

package user_test

import (
	"testing"

	"airtime/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := user.NewEmail("  Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email.Value())
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		cases := []string{"", "   ", "no-at-sign", "two@@example.com", "spaces in@example.com", "missing@tld"}
		for _, raw := range cases {
			t.Run(raw, func(t *testing.T) {
				_, err := user.NewEmail(raw)
				require.ErrorIs(t, err, user.ErrInvalidEmail)
			})
		}
	})
}

func TestNewRole(t *testing.T) {
	t.Run("accepts known roles", func(t *testing.T) {
		for _, raw := range []string{"user", "station", "admin"} {
			role, err := user.NewRole(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, role.String())
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("alice@example.com")
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := user.NewUser(email, "hashed-password", "Alice", "Kapoor", user.RoleUser)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
		assert.Equal(t, "Alice", actual.FirstName())
		assert.Equal(t, "Kapoor", actual.LastName())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.True(t, actual.IsActive())
	})

	t.Run("requires password hash", func(t *testing.T) {
		actual, err := user.NewUser(email, "", "Alice", "Kapoor", user.RoleUser)
		require.Error(t, err)
		assert.Nil(t, actual)
	})

	t.Run("requires valid role", func(t *testing.T) {
		actual, err := user.NewUser(email, "hashed-password", "Alice", "Kapoor", user.Role("superuser"))
		require.ErrorIs(t, err, user.ErrInvalidRole)
		assert.Nil(t, actual)
	})
}

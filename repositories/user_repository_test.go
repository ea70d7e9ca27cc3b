package repositories

import (
	"testing"

	"github.com/mahimathinakaran/wastewise/models"
	"github.com/mahimathinakaran/wastewise/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Register(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.Register("Alice", "alice@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	// Plaintext never stored.
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, utils.CheckPassword("secret123", user.Password))
}

func TestUserRepository_Register_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Register("Alice", "alice@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)

	// Same email fails regardless of the requested role.
	_, err = repo.Register("Mallory", "alice@example.com", "other-pass", models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestUserRepository_Authenticate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Register("Alice", "alice@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)

	user, err := repo.Authenticate("alice@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = repo.Authenticate("alice@example.com", "wrong-password", models.RoleUser)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = repo.Authenticate("nobody@example.com", "secret123", models.RoleUser)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUserRepository_Authenticate_RoleMismatch(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Register("Alice", "alice@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)

	// Correct password, wrong role.
	_, err = repo.Authenticate("alice@example.com", "secret123", models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrRoleMismatch)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	alice, err := repo.Register("Alice", "alice@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)
	_, err = repo.Register("Bob", "bob@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)

	_, err = repo.UpdateProfile(alice.ID, "", "")
	assert.ErrorIs(t, err, models.ErrNoFields)

	_, err = repo.UpdateProfile(alice.ID, "", "bob@example.com")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	updated, err := repo.UpdateProfile(alice.ID, "Alice Cooper", "")
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	// Re-submitting her own email is not a collision.
	updated, err = repo.UpdateProfile(alice.ID, "", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	alice, err := repo.Register("Alice", "alice@example.com", "secret123", models.RoleUser)
	require.NoError(t, err)

	err = repo.UpdatePassword(alice.ID, "wrong-password", "newsecret")
	assert.ErrorIs(t, err, models.ErrInvalidCurrentPassword)

	require.NoError(t, repo.UpdatePassword(alice.ID, "secret123", "newsecret"))

	_, err = repo.Authenticate("alice@example.com", "secret123", models.RoleUser)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = repo.Authenticate("alice@example.com", "newsecret", models.RoleUser)
	assert.NoError(t, err)
}

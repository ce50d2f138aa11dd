package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	users := NewUsers()
	ctx := context.Background()

	user, err := users.Register(ctx, "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.PasswordHash)

	got, err := users.Authenticate(ctx, "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = users.Authenticate(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	users := NewUsers()
	ctx := context.Background()

	_, err := users.Register(ctx, "Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	_, err = users.Register(ctx, "Other", "JANE@Example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	users := NewUsers()
	ctx := context.Background()
	user, _ := users.Register(ctx, "Jane", "jane@example.com", "secret123")

	phone := "555-123-4567"
	updated, err := users.UpdateProfile(ctx, user.ID, ProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.Name, "omitted fields keep their value")
	assert.Equal(t, phone, updated.Phone)
}

func TestChangePassword(t *testing.T) {
	users := NewUsers()
	ctx := context.Background()
	user, _ := users.Register(ctx, "Jane", "jane@example.com", "secret123")

	err := users.ChangePassword(ctx, user.ID, "wrong", "newpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, users.ChangePassword(ctx, user.ID, "secret123", "newpass123"))

	_, err = users.Authenticate(ctx, "jane@example.com", "newpass123")
	assert.NoError(t, err)
	_, err = users.Authenticate(ctx, "jane@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeedUsers_DemoAccount(t *testing.T) {
	users := SeedUsers()
	_, err := users.Authenticate(context.Background(), "john@example.com", "password123")
	assert.NoError(t, err)
}

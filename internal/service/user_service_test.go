package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	store := newMemStore()
	svc := NewUserService(store, zap.NewNop())

	user, err := svc.Register(context.Background(), "aziza", "secret123", "Aziza", "Karimova", "+998901234567", model.RoleAdministrator)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be stored hashed")

	// Повторная регистрация логина отклоняется
	_, err = svc.Register(context.Background(), "aziza", "other", "", "", "", model.RoleStudent)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Неизвестная роль отклоняется типом, а не строкой
	_, err = svc.Register(context.Background(), "bek", "pw", "", "", "", model.Role("Ustoz"))
	assert.ErrorIs(t, err, ErrInvalidRole)

	got, err := svc.Authenticate(context.Background(), "aziza", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(context.Background(), "aziza", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ustozhub/tutorcenter/internal/model"
)

func TestTokenIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	user := &model.User{ID: 42, Username: "aziza", Role: model.RoleManager}
	token, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, model.RoleManager, claims.Role)
	assert.Equal(t, "aziza", claims.Subject)
}

func TestTokenParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	other := NewTokenIssuer("other-secret")

	token, err := issuer.Issue(&model.User{ID: 1, Username: "b", Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenParseRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	_, err := issuer.Parse("not.a.token")
	assert.Error(t, err)
}

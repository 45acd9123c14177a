package token_test

import (
	"testing"
	"time"

	"github.com/azimmemon2002/socialhub/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestService_Cycle(t *testing.T) {
	// Arrange
	service := token.NewService("super_secret_key", time.Hour)

	// Act 1: Generate
	raw, err := service.Generate("alice", []string{"USER", "ADMIN"})

	// Assert 1: Should succeed
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	// Act 2: Verify
	claims, err := service.Verify(raw)

	// Assert 2: Should retrieve data
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "USER,ADMIN", claims.Roles)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.RoleList())
}

func TestService_Expired(t *testing.T) {
	service := token.NewService("super_secret_key", -time.Second)

	raw, err := service.Generate("alice", []string{"USER"})
	assert.NoError(t, err)

	_, err = service.Verify(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestService_WrongSecret(t *testing.T) {
	issuer := token.NewService("secret_a", time.Hour)
	verifier := token.NewService("secret_b", time.Hour)

	raw, err := issuer.Generate("alice", []string{"USER"})
	assert.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestService_Malformed(t *testing.T) {
	service := token.NewService("secret", time.Hour)
	_, err := service.Verify("invalid.token.string")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestClaims_GrantedRoles(t *testing.T) {
	claims := &token.Claims{Roles: "user,admin"}
	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, claims.GrantedRoles())

	empty := &token.Claims{}
	assert.Empty(t, empty.GrantedRoles())
}

package token

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a socialhub token. Roles is the verbatim comma-joined
// claim value as issued by the auth service.
type Claims struct {
	Roles string `json:"roles"`
	jwt.RegisteredClaims
}

// RoleList splits the roles claim. An absent claim means no roles, not an
// error.
func (c *Claims) RoleList() []string {
	if c.Roles == "" {
		return nil
	}
	return strings.Split(c.Roles, ",")
}

// GrantedRoles maps the roles claim onto the authorization convention used
// by the request pipeline: each name uppercased and prefixed with ROLE_.
func (c *Claims) GrantedRoles() []string {
	roles := c.RoleList()
	granted := make([]string, 0, len(roles))
	for _, role := range roles {
		granted = append(granted, "ROLE_"+strings.ToUpper(role))
	}
	return granted
}

type Service interface {
	Generate(username string, roles []string) (string, error)
	Verify(tokenString string) (*Claims, error)
}

// Package account owns user identity and credentials for the auth server:
// registration, password verification and token issuance.
package account

import "time"

// DefaultRole is assigned to every newly registered user.
const DefaultRole = "USER"

// AdminRole exists so the seeded role set matches what the user server's
// authorization layer expects.
const AdminRole = "ADMIN"

// User is a credential record. The password is stored only as a bcrypt hash.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Roles        []Role    `json:"roles" gorm:"many2many:user_roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// RoleNames flattens the role set for claim embedding.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

// Role is a named permission group (USER, ADMIN).
type Role struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:50;not null"`
}

func (Role) TableName() string {
	return "roles"
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=4,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}

// UserDetails is the identity shape shared with the user server.
type UserDetails struct {
	UserID   int64    `json:"userId"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

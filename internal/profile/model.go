// Package profile owns the user server's identity mirror and profile
// records. Identity is authoritative in the auth server; the mirror is keyed
// by the remote user id.
package profile

import "time"

// User mirrors a subset of the auth server's credential record plus a local
// primary key. AuthUserID links back to the remote identity.
type User struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	AuthUserID int64     `json:"auth_user_id" gorm:"uniqueIndex;not null"`
	Username   string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Profile holds the locally-owned profile fields, 1:1 with User.
type Profile struct {
	ID                int64  `json:"id" gorm:"primaryKey"`
	UserID            int64  `json:"user_id" gorm:"uniqueIndex;not null"`
	FirstName         string `json:"first_name" gorm:"size:50"`
	LastName          string `json:"last_name" gorm:"size:50"`
	Bio               string `json:"bio" gorm:"size:250"`
	ProfilePictureURL string `json:"profile_picture_url" gorm:"size:255"`
}

func (Profile) TableName() string {
	return "profiles"
}

// RemoteIdentity is the identity shape returned by the auth server's
// registration endpoint.
type RemoteIdentity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Response is the profile read shape.
type Response struct {
	ID                int64  `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	FirstName         *string `json:"firstName" binding:"omitempty,max=50"`
	LastName          *string `json:"lastName" binding:"omitempty,max=50"`
	Bio               *string `json:"bio" binding:"omitempty,max=250"`
	ProfilePictureURL *string `json:"profilePictureUrl" binding:"omitempty,max=255"`
}

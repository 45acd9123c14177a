package profile

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repository is the data access layer for the identity mirror and profiles.
type Repository interface {
	FindUserByUsername(ctx context.Context, username string) (*User, error)
	FindUserByAuthID(ctx context.Context, authUserID int64) (*User, error)
	FindUserByID(ctx context.Context, id int64) (*User, error)
	CreateMirror(ctx context.Context, user *User, profile *Profile) error
	FindProfileByUserID(ctx context.Context, userID int64) (*Profile, error)
	SaveProfile(ctx context.Context, profile *Profile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	return &user, nil
}

func (r *repository) FindUserByAuthID(ctx context.Context, authUserID int64) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("auth_user_id = ?", authUserID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by auth id %d: %w", authUserID, err)
	}
	return &user, nil
}

// CreateMirror inserts the identity mirror and its profile in one
// transaction so a half-created mirror cannot be observed.
func (r *repository) CreateMirror(ctx context.Context, user *User, profile *Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create user mirror: %w", err)
	}
	return nil
}

func (r *repository) FindProfileByUserID(ctx context.Context, userID int64) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile for user %d: %w", userID, err)
	}
	return &profile, nil
}

func (r *repository) FindUserByID(ctx context.Context, id int64) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *repository) SaveProfile(ctx context.Context, profile *Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("failed to save profile %d: %w", profile.ID, err)
	}
	return nil
}

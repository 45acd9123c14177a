package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository is the data access layer for credential records.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindRoleByName(ctx context.Context, name string) (*Role, error)
	Create(ctx context.Context, user *User) error
	EnsureRole(ctx context.Context, name string) error
}

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Preload("Roles").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	return &user, nil
}

func (r *repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count users by username: %w", err)
	}
	return count > 0, nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count users by email: %w", err)
	}
	return count > 0, nil
}

func (r *repository) FindRoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find role %s: %w", name, err)
	}
	return &role, nil
}

func (r *repository) Create(ctx context.Context, user *User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// EnsureRole seeds a role if it is not present yet.
func (r *repository) EnsureRole(ctx context.Context, name string) error {
	err := r.db.WithContext(ctx).Where(Role{Name: name}).FirstOrCreate(&Role{Name: name}).Error
	if err != nil {
		return fmt.Errorf("failed to ensure role %s: %w", name, err)
	}
	return nil
}

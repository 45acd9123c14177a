package friend

import (
	"context"
	"errors"
	"fmt"

	"github.com/azimmemon2002/socialhub/internal/profile"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repository is the data access layer for friend relationships. User lookups
// read the identity mirror owned by the profile package.
type Repository interface {
	FindUserByUsername(ctx context.Context, username string) (*profile.User, error)
	FindUserByID(ctx context.Context, id int64) (*profile.User, error)
	Create(ctx context.Context, friend *Friend) error
	FindByID(ctx context.Context, id int64) (*Friend, error)
	Save(ctx context.Context, friend *Friend) error
	AcceptRequest(ctx context.Context, request, reciprocal *Friend) error
	RemoveRelation(ctx context.Context, relation, reciprocal *Friend) error
	ExistsWithStatus(ctx context.Context, userID, friendID int64, status string) (bool, error)
	FindRelation(ctx context.Context, userID, friendID int64, status string) (*Friend, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status string) ([]Friend, error)
	ListByFriendAndStatus(ctx context.Context, friendID int64, status string) ([]Friend, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindUserByUsername(ctx context.Context, username string) (*profile.User, error) {
	var user profile.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	return &user, nil
}

func (r *repository) FindUserByID(ctx context.Context, id int64) (*profile.User, error) {
	var user profile.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *repository) Create(ctx context.Context, friend *Friend) error {
	if err := r.db.WithContext(ctx).Create(friend).Error; err != nil {
		return fmt.Errorf("failed to create friend row: %w", err)
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Friend, error) {
	var friend Friend
	err := r.db.WithContext(ctx).First(&friend, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find friend row %d: %w", id, err)
	}
	return &friend, nil
}

func (r *repository) Save(ctx context.Context, friend *Friend) error {
	if err := r.db.WithContext(ctx).Save(friend).Error; err != nil {
		return fmt.Errorf("failed to save friend row %d: %w", friend.ID, err)
	}
	return nil
}

// AcceptRequest flips the request to ACCEPTED and inserts the reciprocal
// row in one transaction so a one-way friendship cannot be observed.
func (r *repository) AcceptRequest(ctx context.Context, request, reciprocal *Friend) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(request).Error; err != nil {
			return err
		}
		return tx.Create(reciprocal).Error
	})
	if err != nil {
		return fmt.Errorf("failed to accept friend request %d: %w", request.ID, err)
	}
	return nil
}

// RemoveRelation deletes both directions of a friendship in one
// transaction. The reciprocal row may be nil when it was never created.
func (r *repository) RemoveRelation(ctx context.Context, relation, reciprocal *Friend) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(relation).Error; err != nil {
			return err
		}
		if reciprocal == nil {
			return nil
		}
		return tx.Delete(reciprocal).Error
	})
	if err != nil {
		return fmt.Errorf("failed to remove friend relation %d: %w", relation.ID, err)
	}
	return nil
}

func (r *repository) ExistsWithStatus(ctx context.Context, userID, friendID int64, status string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Friend{}).
		Where("user_id = ? AND friend_id = ? AND status = ?", userID, friendID, status).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check friend relation: %w", err)
	}
	return count > 0, nil
}

func (r *repository) FindRelation(ctx context.Context, userID, friendID int64, status string) (*Friend, error) {
	var friend Friend
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ? AND status = ?", userID, friendID, status).
		First(&friend).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find friend relation: %w", err)
	}
	return &friend, nil
}

func (r *repository) ListByUserAndStatus(ctx context.Context, userID int64, status string) ([]Friend, error) {
	var friends []Friend
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list friends for user %d: %w", userID, err)
	}
	return friends, nil
}

func (r *repository) ListByFriendAndStatus(ctx context.Context, friendID int64, status string) ([]Friend, error) {
	var friends []Friend
	err := r.db.WithContext(ctx).
		Where("friend_id = ? AND status = ?", friendID, status).
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for user %d: %w", friendID, err)
	}
	return friends, nil
}

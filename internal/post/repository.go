package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/azimmemon2002/socialhub/internal/profile"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repository is the data access layer for posts, likes and comments. User
// lookups read the identity mirror owned by the profile package.
type Repository interface {
	FindUserByUsername(ctx context.Context, username string) (*profile.User, error)
	FindUserByID(ctx context.Context, id int64) (*profile.User, error)
	CreatePost(ctx context.Context, post *Post) error
	FindPostByID(ctx context.Context, id int64) (*Post, error)
	DeletePost(ctx context.Context, id int64) error
	ListPosts(ctx context.Context, offset, limit int) ([]Post, error)
	ListPostsByUser(ctx context.Context, userID int64, offset, limit int) ([]Post, int64, error)
	LikeExists(ctx context.Context, postID, userID int64) (bool, error)
	CreateLike(ctx context.Context, like *Like) error
	ListLikes(ctx context.Context, postID int64) ([]Like, error)
	CountLikes(ctx context.Context, postID int64) (int64, error)
	CreateComment(ctx context.Context, comment *Comment) error
	ListComments(ctx context.Context, postID int64) ([]Comment, error)
	CountComments(ctx context.Context, postID int64) (int64, error)
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

func (r *repository) CreatePost(ctx context.Context, post *Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *repository) FindPostByID(ctx context.Context, id int64) (*Post, error) {
	var post Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post %d: %w", id, err)
	}
	return &post, nil
}

func (r *repository) DeletePost(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Post{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}
	return nil
}

func (r *repository) ListPosts(ctx context.Context, offset, limit int) ([]Post, error) {
	var posts []Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *repository) ListPostsByUser(ctx context.Context, userID int64, offset, limit int) ([]Post, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Post{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts for user %d: %w", userID, err)
	}

	var posts []Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts for user %d: %w", userID, err)
	}
	return posts, total, nil
}

func (r *repository) LikeExists(ctx context.Context, postID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return count > 0, nil
}

func (r *repository) CreateLike(ctx context.Context, like *Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *repository) ListLikes(ctx context.Context, postID int64) ([]Like, error) {
	var likes []Like
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("failed to list likes for post %d: %w", postID, err)
	}
	return likes, nil
}

func (r *repository) CountLikes(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes for post %d: %w", postID, err)
	}
	return count, nil
}

func (r *repository) CreateComment(ctx context.Context, comment *Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *repository) ListComments(ctx context.Context, postID int64) ([]Comment, error) {
	var comments []Comment
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %d: %w", postID, err)
	}
	return comments, nil
}

func (r *repository) CountComments(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments for post %d: %w", postID, err)
	}
	return count, nil
}

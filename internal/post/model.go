// Package post owns posts, likes and comments on the user server.
package post

import "time"

type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"not null"`
	MediaURL  string    `json:"media_url"`
	MediaType string    `json:"media_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	PostID    int64     `json:"post_id" gorm:"index;not null"`
	UserID    int64     `json:"user_id" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Like records one user liking one post; the pair is unique.
type Like struct {
	ID      int64     `json:"id" gorm:"primaryKey"`
	PostID  int64     `json:"post_id" gorm:"uniqueIndex:idx_likes_post_user;not null"`
	UserID  int64     `json:"user_id" gorm:"uniqueIndex:idx_likes_post_user;not null"`
	LikedAt time.Time `json:"liked_at"`
}

func (Like) TableName() string {
	return "likes"
}

type CreateRequest struct {
	Content   string `json:"content" binding:"required"`
	MediaURL  string `json:"mediaUrl"`
	MediaType string `json:"mediaType"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type Response struct {
	ID             int64     `json:"id"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	MediaURL       string    `json:"mediaUrl"`
	MediaType      string    `json:"mediaType"`
	CreatedAt      time.Time `json:"createdAt"`
	LikeCount      int64     `json:"likeCount"`
	CommentCount   int64     `json:"commentCount"`
}

type CommentResponse struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"postId"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

type LikeResponse struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	LikedAt  time.Time `json:"likedAt"`
}

// Page is the pagination envelope for per-user post listings.
type Page struct {
	Content       []Response `json:"content"`
	PageNumber    int        `json:"pageNumber"`
	PageSize      int        `json:"pageSize"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
}

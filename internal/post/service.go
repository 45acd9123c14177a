package post

import (
	"context"
	"errors"
	"time"

	"github.com/azimmemon2002/socialhub/internal/profile"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrAlreadyLiked  = errors.New("you have already liked this post")
	ErrNotPostAuthor = errors.New("you are not authorized to modify this post")
)

type Service interface {
	Create(ctx context.Context, username string, req CreateRequest) (*Response, error)
	Like(ctx context.Context, username string, postID int64) error
	Comment(ctx context.Context, username string, postID int64, req CommentRequest) (*CommentResponse, error)
	List(ctx context.Context, page, size int) ([]Response, error)
	ListByUsername(ctx context.Context, username string, page, size int) (*Page, error)
	Delete(ctx context.Context, username string, postID int64) error
	Comments(ctx context.Context, postID int64) ([]CommentResponse, error)
	Likes(ctx context.Context, postID int64) ([]LikeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, username string, req CreateRequest) (*Response, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	post := &Post{
		UserID:    user.ID,
		Content:   req.Content,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, post, user)
}

func (s *service) Like(ctx context.Context, username string, postID int64) error {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return err
	}
	if _, err := s.postByID(ctx, postID); err != nil {
		return err
	}

	liked, err := s.repo.LikeExists(ctx, postID, user.ID)
	if err != nil {
		return err
	}
	if liked {
		return ErrAlreadyLiked
	}

	return s.repo.CreateLike(ctx, &Like{
		PostID:  postID,
		UserID:  user.ID,
		LikedAt: time.Now(),
	})
}

func (s *service) Comment(ctx context.Context, username string, postID int64, req CommentRequest) (*CommentResponse, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if _, err := s.postByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:    postID,
		UserID:    user.ID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return &CommentResponse{
		ID:             comment.ID,
		PostID:         comment.PostID,
		AuthorUsername: user.Username,
		Content:        comment.Content,
		CreatedAt:      comment.CreatedAt,
	}, nil
}

func (s *service) List(ctx context.Context, page, size int) ([]Response, error) {
	posts, err := s.repo.ListPosts(ctx, page*size, size)
	if err != nil {
		return nil, err
	}

	responses := make([]Response, 0, len(posts))
	for i := range posts {
		author, err := s.repo.FindUserByID(ctx, posts[i].UserID)
		if err != nil {
			return nil, err
		}
		resp, err := s.toResponse(ctx, &posts[i], author)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *service) ListByUsername(ctx context.Context, username string, page, size int) (*Page, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, total, err := s.repo.ListPostsByUser(ctx, user.ID, page*size, size)
	if err != nil {
		return nil, err
	}

	content := make([]Response, 0, len(posts))
	for i := range posts {
		resp, err := s.toResponse(ctx, &posts[i], user)
		if err != nil {
			return nil, err
		}
		content = append(content, *resp)
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &Page{
		Content:       content,
		PageNumber:    page,
		PageSize:      size,
		TotalPages:    totalPages,
		TotalElements: total,
	}, nil
}

func (s *service) Delete(ctx context.Context, username string, postID int64) error {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return err
	}
	post, err := s.postByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != user.ID {
		return ErrNotPostAuthor
	}

	return s.repo.DeletePost(ctx, postID)
}

func (s *service) Comments(ctx context.Context, postID int64) ([]CommentResponse, error) {
	if _, err := s.postByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		author, err := s.repo.FindUserByID(ctx, comment.UserID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, CommentResponse{
			ID:             comment.ID,
			PostID:         comment.PostID,
			AuthorUsername: author.Username,
			Content:        comment.Content,
			CreatedAt:      comment.CreatedAt,
		})
	}
	return responses, nil
}

func (s *service) Likes(ctx context.Context, postID int64) ([]LikeResponse, error) {
	if _, err := s.postByID(ctx, postID); err != nil {
		return nil, err
	}

	likes, err := s.repo.ListLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	responses := make([]LikeResponse, 0, len(likes))
	for _, like := range likes {
		user, err := s.repo.FindUserByID(ctx, like.UserID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, LikeResponse{
			ID:       like.ID,
			Username: user.Username,
			LikedAt:  like.LikedAt,
		})
	}
	return responses, nil
}

func (s *service) userByUsername(ctx context.Context, username string) (*profile.User, error) {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *service) postByID(ctx context.Context, postID int64) (*Post, error) {
	post, err := s.repo.FindPostByID(ctx, postID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return post, err
}

func (s *service) toResponse(ctx context.Context, post *Post, author *profile.User) (*Response, error) {
	likeCount, err := s.repo.CountLikes(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.repo.CountComments(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &Response{
		ID:             post.ID,
		AuthorUsername: author.Username,
		Content:        post.Content,
		MediaURL:       post.MediaURL,
		MediaType:      post.MediaType,
		CreatedAt:      post.CreatedAt,
		LikeCount:      likeCount,
		CommentCount:   commentCount,
	}, nil
}

package profile

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// Service manages the identity mirror and profile reads/updates.
type Service interface {
	CreateMirror(ctx context.Context, identity RemoteIdentity) error
	GetByUsername(ctx context.Context, username string) (*Response, error)
	GetByID(ctx context.Context, userID int64) (*Response, error)
	Update(ctx context.Context, username string, req UpdateRequest) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateMirror records the remote identity locally and initializes an empty
// profile. It is idempotent on the remote user id: a registration retried
// after a local failure converges instead of conflicting.
func (s *service) CreateMirror(ctx context.Context, identity RemoteIdentity) error {
	_, err := s.repo.FindUserByAuthID(ctx, identity.UserID)
	if err == nil {
		logrus.WithField("auth_user_id", identity.UserID).Info("identity mirror already exists")
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	user := &User{
		AuthUserID: identity.UserID,
		Username:   identity.Username,
		Email:      identity.Email,
	}
	return s.repo.CreateMirror(ctx, user, &Profile{})
}

func (s *service) GetByUsername(ctx context.Context, username string) (*Response, error) {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindProfileByUserID(ctx, user.ID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return toResponse(user, p), nil
}

// GetByID resolves a profile by the mirrored user's id, matching the id
// reported in responses.
func (s *service) GetByID(ctx context.Context, userID int64) (*Response, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindProfileByUserID(ctx, user.ID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return toResponse(user, p), nil
}

func (s *service) Update(ctx context.Context, username string, req UpdateRequest) error {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	p, err := s.repo.FindProfileByUserID(ctx, user.ID)
	if errors.Is(err, ErrNotFound) {
		return ErrProfileNotFound
	}
	if err != nil {
		return err
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.ProfilePictureURL != nil {
		p.ProfilePictureURL = *req.ProfilePictureURL
	}

	return s.repo.SaveProfile(ctx, p)
}

// toResponse reports the user's id, not the profile row's, so the id a
// caller sees is the same one the friend and post endpoints address.
func toResponse(user *User, p *Profile) *Response {
	return &Response{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Bio:               p.Bio,
		ProfilePictureURL: p.ProfilePictureURL,
	}
}

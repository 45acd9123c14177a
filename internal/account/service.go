package account

import (
	"context"
	"errors"

	"github.com/azimmemon2002/socialhub/internal/token"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Service handles registration, login and token validation.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserDetails, error)
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Validate(ctx context.Context, rawToken string) (*UserDetails, error)
	SeedRoles(ctx context.Context) error
}

type service struct {
	repo         Repository
	tokenService token.Service
}

func NewService(repo Repository, tokenService token.Service) Service {
	return &service{repo: repo, tokenService: tokenService}
}

// SeedRoles makes sure the built-in roles exist before the server accepts
// registrations.
func (s *service) SeedRoles(ctx context.Context) error {
	for _, name := range []string{DefaultRole, AdminRole} {
		if err := s.repo.EnsureRole(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*UserDetails, error) {
	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	role, err := s.repo.FindRoleByName(ctx, DefaultRole)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Roles:        []Role{*role},
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logrus.WithField("username", user.Username).Info("user registered")

	return &UserDetails{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.RoleNames(),
	}, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	raw, err := s.tokenService.Generate(user.Username, user.RoleNames())
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: raw, TokenType: "Bearer"}, nil
}

// Validate confirms a token against the shared secret and resolves the
// current identity behind it.
func (s *service) Validate(ctx context.Context, rawToken string) (*UserDetails, error) {
	claims, err := s.tokenService.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &UserDetails{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.RoleNames(),
	}, nil
}

package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/azimmemon2002/socialhub/internal/account"
	"github.com/azimmemon2002/socialhub/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	users  map[string]*account.User
	roles  map[string]*account.Role
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  make(map[string]*account.User),
		roles:  make(map[string]*account.Role),
		nextID: 1,
	}
}

func (f *fakeRepo) FindByUsername(_ context.Context, username string) (*account.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, account.ErrNotFound
	}
	return user, nil
}

func (f *fakeRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) FindRoleByName(_ context.Context, name string) (*account.Role, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, account.ErrNotFound
	}
	return role, nil
}

func (f *fakeRepo) Create(_ context.Context, user *account.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return nil
}

func (f *fakeRepo) EnsureRole(_ context.Context, name string) error {
	if _, ok := f.roles[name]; !ok {
		f.roles[name] = &account.Role{ID: f.nextID, Name: name}
		f.nextID++
	}
	return nil
}

func newService(t *testing.T) (account.Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	svc := account.NewService(repo, token.NewService("test_secret", time.Hour))
	require.NoError(t, svc.SeedRoles(context.Background()))
	return svc, repo
}

func TestRegister(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	details, err := svc.Register(ctx, account.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", details.Username)
	assert.Equal(t, []string{account.DefaultRole}, details.Roles)
	assert.NotZero(t, details.UserID)

	// Second registration with the same username conflicts.
	_, err = svc.Register(ctx, account.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, account.ErrUsernameTaken)

	// Same email, different username conflicts too.
	_, err = svc.Register(ctx, account.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, account.ErrEmailTaken)

	// A distinct user registers fine.
	_, err = svc.Register(ctx, account.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, account.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestValidate(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, account.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	details, err := svc.Validate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", details.Username)
	assert.Equal(t, []string{account.DefaultRole}, details.Roles)

	_, err = svc.Validate(ctx, "not.a.token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)

	// Token survives but the credential record is gone.
	delete(repo.users, "alice")
	_, err = svc.Validate(ctx, resp.Token)
	assert.ErrorIs(t, err, account.ErrUserNotFound)
}

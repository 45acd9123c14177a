package profile_test

import (
	"context"
	"testing"

	"github.com/azimmemon2002/socialhub/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users    map[int64]*profile.User
	profiles map[int64]*profile.Profile // keyed by profile id
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    make(map[int64]*profile.User),
		profiles: make(map[int64]*profile.Profile),
		nextID:   1,
	}
}

func (f *fakeRepo) FindUserByUsername(_ context.Context, username string) (*profile.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, profile.ErrNotFound
}

func (f *fakeRepo) FindUserByAuthID(_ context.Context, authUserID int64) (*profile.User, error) {
	for _, u := range f.users {
		if u.AuthUserID == authUserID {
			return u, nil
		}
	}
	return nil, profile.ErrNotFound
}

func (f *fakeRepo) CreateMirror(_ context.Context, user *profile.User, p *profile.Profile) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user

	p.ID = f.nextID
	f.nextID++
	p.UserID = user.ID
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeRepo) FindProfileByUserID(_ context.Context, userID int64) (*profile.Profile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, profile.ErrNotFound
}

func (f *fakeRepo) FindUserByID(_ context.Context, id int64) (*profile.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, profile.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) SaveProfile(_ context.Context, p *profile.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func TestCreateMirror(t *testing.T) {
	repo := newFakeRepo()
	svc := profile.NewService(repo)
	ctx := context.Background()

	identity := profile.RemoteIdentity{UserID: 42, Username: "alice", Email: "alice@example.com"}
	require.NoError(t, svc.CreateMirror(ctx, identity))

	resp, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Empty(t, resp.Bio, "new profiles start empty")

	// Retried registration after a partial failure must converge.
	require.NoError(t, svc.CreateMirror(ctx, identity))
	assert.Len(t, repo.users, 1)
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo()
	svc := profile.NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.CreateMirror(ctx, profile.RemoteIdentity{UserID: 1, Username: "alice", Email: "a@example.com"}))
	byName, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	// The reported id is the mirrored user's id and resolves back to the
	// same profile.
	user, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byID, err := svc.GetByID(ctx, byName.ID)
	require.NoError(t, err)
	assert.Equal(t, byName, byID)

	_, err = svc.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, profile.ErrUserNotFound)
}

func TestUpdate(t *testing.T) {
	repo := newFakeRepo()
	svc := profile.NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.CreateMirror(ctx, profile.RemoteIdentity{UserID: 1, Username: "alice", Email: "a@example.com"}))

	bio := "hello"
	first := "Alice"
	require.NoError(t, svc.Update(ctx, "alice", profile.UpdateRequest{Bio: &bio, FirstName: &first}))

	resp, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Bio)
	assert.Equal(t, "Alice", resp.FirstName)
	assert.Empty(t, resp.LastName, "untouched fields keep their value")

	err = svc.Update(ctx, "nobody", profile.UpdateRequest{Bio: &bio})
	assert.ErrorIs(t, err, profile.ErrUserNotFound)
}

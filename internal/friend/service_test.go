package friend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/azimmemon2002/socialhub/internal/friend"
	"github.com/azimmemon2002/socialhub/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users   map[int64]*profile.User
	friends map[int64]*friend.Friend
	nextID  int64

	acceptErr error // returned by AcceptRequest before any write
	removeErr error // returned by RemoveRelation before any write
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:   make(map[int64]*profile.User),
		friends: make(map[int64]*friend.Friend),
		nextID:  1,
	}
}

func (f *fakeRepo) addUser(username string) *profile.User {
	user := &profile.User{ID: f.nextID, AuthUserID: f.nextID, Username: username, Email: username + "@example.com"}
	f.nextID++
	f.users[user.ID] = user
	return user
}

func (f *fakeRepo) FindUserByUsername(_ context.Context, username string) (*profile.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, friend.ErrNotFound
}

func (f *fakeRepo) FindUserByID(_ context.Context, id int64) (*profile.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, friend.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) Create(_ context.Context, fr *friend.Friend) error {
	fr.ID = f.nextID
	f.nextID++
	f.friends[fr.ID] = fr
	return nil
}

// FindByID returns a detached copy, like a row scanned out of the database,
// so callers mutating it change nothing until they write it back.
func (f *fakeRepo) FindByID(_ context.Context, id int64) (*friend.Friend, error) {
	fr, ok := f.friends[id]
	if !ok {
		return nil, friend.ErrNotFound
	}
	detached := *fr
	return &detached, nil
}

func (f *fakeRepo) Save(_ context.Context, fr *friend.Friend) error {
	stored := *fr
	f.friends[fr.ID] = &stored
	return nil
}

func (f *fakeRepo) AcceptRequest(ctx context.Context, request, reciprocal *friend.Friend) error {
	if f.acceptErr != nil {
		return f.acceptErr
	}
	if err := f.Save(ctx, request); err != nil {
		return err
	}
	return f.Create(ctx, reciprocal)
}

func (f *fakeRepo) RemoveRelation(_ context.Context, relation, reciprocal *friend.Friend) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.friends, relation.ID)
	if reciprocal != nil {
		delete(f.friends, reciprocal.ID)
	}
	return nil
}

func (f *fakeRepo) ExistsWithStatus(_ context.Context, userID, friendID int64, status string) (bool, error) {
	for _, fr := range f.friends {
		if fr.UserID == userID && fr.FriendID == friendID && fr.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) FindRelation(_ context.Context, userID, friendID int64, status string) (*friend.Friend, error) {
	for _, fr := range f.friends {
		if fr.UserID == userID && fr.FriendID == friendID && fr.Status == status {
			detached := *fr
			return &detached, nil
		}
	}
	return nil, friend.ErrNotFound
}

func (f *fakeRepo) ListByUserAndStatus(_ context.Context, userID int64, status string) ([]friend.Friend, error) {
	var out []friend.Friend
	for id := int64(1); id < f.nextID; id++ {
		if fr, ok := f.friends[id]; ok && fr.UserID == userID && fr.Status == status {
			out = append(out, *fr)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByFriendAndStatus(_ context.Context, friendID int64, status string) ([]friend.Friend, error) {
	var out []friend.Friend
	for id := int64(1); id < f.nextID; id++ {
		if fr, ok := f.friends[id]; ok && fr.FriendID == friendID && fr.Status == status {
			out = append(out, *fr)
		}
	}
	return out, nil
}

func sendRequest(t *testing.T, svc friend.Service, ctx context.Context, username string, friendID int64) {
	t.Helper()
	_, err := svc.SendRequest(ctx, username, friendID)
	require.NoError(t, err)
}

func TestSendRequest(t *testing.T) {
	repo := newFakeRepo()
	alice := repo.addUser("alice")
	bob := repo.addUser("bob")
	svc := friend.NewService(repo)
	ctx := context.Background()

	// Self-request is rejected.
	_, err := svc.SendRequest(ctx, "alice", alice.ID)
	assert.ErrorIs(t, err, friend.ErrSelfRequest)

	sent, err := svc.SendRequest(ctx, "alice", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, friend.StatusPending, sent.Status)
	assert.Equal(t, "alice", sent.FromUsername)
	assert.Equal(t, "bob", sent.ToUsername)

	// Duplicate pending request is rejected.
	_, err = svc.SendRequest(ctx, "alice", bob.ID)
	assert.ErrorIs(t, err, friend.ErrDuplicateRequest)

	_, err = svc.SendRequest(ctx, "alice", 9999)
	assert.ErrorIs(t, err, friend.ErrUserNotFound)
}

func TestAcceptCreatesReciprocalFriendship(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("alice")
	bob := repo.addUser("bob")
	svc := friend.NewService(repo)
	ctx := context.Background()

	sendRequest(t, svc, ctx, "alice", bob.ID)

	received, err := svc.ReceivedRequests(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "alice", received[0].FromUsername)

	// Only the recipient may act on the request.
	err = svc.Accept(ctx, "alice", received[0].RequestID)
	assert.ErrorIs(t, err, friend.ErrNotRecipient)

	require.NoError(t, svc.Accept(ctx, "bob", received[0].RequestID))

	// Visible from both sides.
	aliceFriends, err := svc.Friends(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, aliceFriends)

	bobFriends, err := svc.Friends(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, bobFriends)

	// Acting twice on the same request fails.
	err = svc.Accept(ctx, "bob", received[0].RequestID)
	assert.ErrorIs(t, err, friend.ErrNotPending)
}

func TestAcceptFailureLeavesRequestPending(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("alice")
	bob := repo.addUser("bob")
	svc := friend.NewService(repo)
	ctx := context.Background()

	sendRequest(t, svc, ctx, "alice", bob.ID)
	received, err := svc.ReceivedRequests(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, received, 1)

	repo.acceptErr = errors.New("write failed")
	require.Error(t, svc.Accept(ctx, "bob", received[0].RequestID))

	// A failed accept must not leave a one-way friendship behind.
	aliceFriends, err := svc.Friends(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := svc.Friends(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobFriends)

	// The request is still pending, so the accept can be retried.
	received, err = svc.ReceivedRequests(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, received, 1)

	repo.acceptErr = nil
	require.NoError(t, svc.Accept(ctx, "bob", received[0].RequestID))

	aliceFriends, err = svc.Friends(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, aliceFriends)
}

func TestRemoveFailureKeepsBothDirections(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("alice")
	bob := repo.addUser("bob")
	svc := friend.NewService(repo)
	ctx := context.Background()

	sendRequest(t, svc, ctx, "alice", bob.ID)
	received, _ := svc.ReceivedRequests(ctx, "bob")
	require.NoError(t, svc.Accept(ctx, "bob", received[0].RequestID))

	repo.removeErr = errors.New("write failed")
	require.Error(t, svc.Remove(ctx, "alice", bob.ID))

	// The friendship stays intact on both sides.
	aliceFriends, err := svc.Friends(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, aliceFriends)

	bobFriends, err := svc.Friends(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, bobFriends)
}

func TestDecline(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("alice")
	bob := repo.addUser("bob")
	svc := friend.NewService(repo)
	ctx := context.Background()

	sendRequest(t, svc, ctx, "alice", bob.ID)
	received, err := svc.ReceivedRequests(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, received, 1)

	require.NoError(t, svc.Decline(ctx, "bob", received[0].RequestID))

	friends, err := svc.Friends(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestSentRequests(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("alice")
	bob := repo.addUser("bob")
	svc := friend.NewService(repo)
	ctx := context.Background()

	sendRequest(t, svc, ctx, "alice", bob.ID)

	sent, err := svc.SentRequests(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "bob", sent[0].ToUsername)
	assert.Equal(t, friend.StatusPending, sent[0].Status)
}

func TestRemove(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("alice")
	bob := repo.addUser("bob")
	svc := friend.NewService(repo)
	ctx := context.Background()

	sendRequest(t, svc, ctx, "alice", bob.ID)
	received, _ := svc.ReceivedRequests(ctx, "bob")
	require.NoError(t, svc.Accept(ctx, "bob", received[0].RequestID))

	require.NoError(t, svc.Remove(ctx, "alice", bob.ID))

	aliceFriends, err := svc.Friends(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := svc.Friends(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobFriends)

	// Removing again reports the missing relationship.
	err = svc.Remove(ctx, "alice", bob.ID)
	assert.ErrorIs(t, err, friend.ErrNotFriends)
}

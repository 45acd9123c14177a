package friend

import (
	"context"
	"errors"
	"time"

	"github.com/azimmemon2002/socialhub/internal/profile"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrSelfRequest      = errors.New("cannot send friend request to yourself")
	ErrDuplicateRequest = errors.New("friend request already sent")
	ErrAlreadyFriends   = errors.New("you are already friends with this user")
	ErrNotRecipient     = errors.New("you are not the recipient of this friend request")
	ErrNotPending       = errors.New("friend request is not pending")
	ErrNotFriends       = errors.New("friend relationship not found")
)

type Service interface {
	SendRequest(ctx context.Context, username string, friendID int64) (*Response, error)
	Accept(ctx context.Context, username string, requestID int64) error
	Decline(ctx context.Context, username string, requestID int64) error
	Friends(ctx context.Context, username string) ([]string, error)
	ReceivedRequests(ctx context.Context, username string) ([]Response, error)
	SentRequests(ctx context.Context, username string) ([]Response, error)
	Remove(ctx context.Context, username string, friendID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SendRequest(ctx context.Context, username string, friendID int64) (*Response, error) {
	from, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	to, err := s.userByID(ctx, friendID)
	if err != nil {
		return nil, err
	}

	if from.ID == to.ID {
		return nil, ErrSelfRequest
	}

	pending, err := s.repo.ExistsWithStatus(ctx, from.ID, to.ID, StatusPending)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicateRequest
	}

	accepted, err := s.repo.ExistsWithStatus(ctx, from.ID, to.ID, StatusAccepted)
	if err != nil {
		return nil, err
	}
	if accepted {
		return nil, ErrAlreadyFriends
	}

	request := &Friend{
		UserID:      from.ID,
		FriendID:    to.ID,
		Status:      StatusPending,
		RequestedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	return &Response{
		RequestID:    request.ID,
		FromUsername: from.Username,
		ToUsername:   to.Username,
		Status:       request.Status,
		RequestedAt:  request.RequestedAt,
	}, nil
}

// Accept marks the request ACCEPTED and inserts the reciprocal row in one
// repository transaction, so the friendship is either visible from both
// sides or not at all.
func (s *service) Accept(ctx context.Context, username string, requestID int64) error {
	request, to, err := s.pendingRequestFor(ctx, username, requestID)
	if err != nil {
		return err
	}

	request.Status = StatusAccepted
	return s.repo.AcceptRequest(ctx, request, &Friend{
		UserID:      to.ID,
		FriendID:    request.UserID,
		Status:      StatusAccepted,
		RequestedAt: time.Now(),
	})
}

func (s *service) Decline(ctx context.Context, username string, requestID int64) error {
	request, _, err := s.pendingRequestFor(ctx, username, requestID)
	if err != nil {
		return err
	}

	request.Status = StatusDeclined
	return s.repo.Save(ctx, request)
}

func (s *service) Friends(ctx context.Context, username string) ([]string, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	relations, err := s.repo.ListByUserAndStatus(ctx, user.ID, StatusAccepted)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(relations))
	for _, relation := range relations {
		friend, err := s.userByID(ctx, relation.FriendID)
		if err != nil {
			return nil, err
		}
		names = append(names, friend.Username)
	}
	return names, nil
}

func (s *service) ReceivedRequests(ctx context.Context, username string) ([]Response, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByFriendAndStatus(ctx, user.ID, StatusPending)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, requests)
}

func (s *service) SentRequests(ctx context.Context, username string) ([]Response, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByUserAndStatus(ctx, user.ID, StatusPending)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, requests)
}

// Remove deletes both directions of an accepted friendship.
func (s *service) Remove(ctx context.Context, username string, friendID int64) error {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return err
	}
	if _, err := s.userByID(ctx, friendID); err != nil {
		return err
	}

	relation, err := s.repo.FindRelation(ctx, user.ID, friendID, StatusAccepted)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFriends
	}
	if err != nil {
		return err
	}

	reciprocal, err := s.repo.FindRelation(ctx, friendID, user.ID, StatusAccepted)
	if errors.Is(err, ErrNotFound) {
		reciprocal = nil
	} else if err != nil {
		return err
	}
	return s.repo.RemoveRelation(ctx, relation, reciprocal)
}

func (s *service) pendingRequestFor(ctx context.Context, username string, requestID int64) (*Friend, *profile.User, error) {
	to, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	request, err := s.repo.FindByID(ctx, requestID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if request.FriendID != to.ID {
		return nil, nil, ErrNotRecipient
	}
	if request.Status != StatusPending {
		return nil, nil, ErrNotPending
	}
	return request, to, nil
}

func (s *service) toResponses(ctx context.Context, requests []Friend) ([]Response, error) {
	responses := make([]Response, 0, len(requests))
	for _, request := range requests {
		from, err := s.userByID(ctx, request.UserID)
		if err != nil {
			return nil, err
		}
		to, err := s.userByID(ctx, request.FriendID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, Response{
			RequestID:    request.ID,
			FromUsername: from.Username,
			ToUsername:   to.Username,
			Status:       request.Status,
			RequestedAt:  request.RequestedAt,
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

func (s *service) userByID(ctx context.Context, id int64) (*profile.User, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

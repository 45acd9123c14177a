// Package friend owns friend requests and relationships on the user server.
package friend

import "time"

// Relationship status values.
const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusDeclined = "DECLINED"
)

// Friend is a directed relationship row. An accepted friendship is stored as
// two reciprocal ACCEPTED rows.
type Friend struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"index;not null"`
	FriendID    int64     `json:"friend_id" gorm:"index;not null"`
	Status      string    `json:"status" gorm:"size:20;not null"`
	RequestedAt time.Time `json:"requested_at"`
}

func (Friend) TableName() string {
	return "friends"
}

type Request struct {
	FriendID int64 `json:"friendId" binding:"required"`
}

// Action types for POST /friends/action.
const (
	ActionAccept  = "ACCEPT"
	ActionDecline = "DECLINE"
)

type ActionRequest struct {
	RequestID  int64  `json:"requestId" binding:"required"`
	ActionType string `json:"actionType" binding:"required,oneof=ACCEPT DECLINE"`
}

type Response struct {
	RequestID    int64     `json:"requestId"`
	FromUsername string    `json:"fromUsername"`
	ToUsername   string    `json:"toUsername"`
	Status       string    `json:"status"`
	RequestedAt  time.Time `json:"requestedAt"`
}

type ListResponse struct {
	Friends []string `json:"friends"`
}

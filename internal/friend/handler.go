package friend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/azimmemon2002/socialhub/internal/httpapi"
	"github.com/azimmemon2002/socialhub/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// SendRequest handles POST /friends/request.
func (h *Handler) SendRequest(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	sent, err := h.service.SendRequest(c.Request.Context(), middleware.Username(c), req.FriendID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sent)
}

// Action handles POST /friends/action (accept or decline).
func (h *Handler) Action(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	username := middleware.Username(c)
	var err error
	var message string
	switch req.ActionType {
	case ActionAccept:
		err = h.service.Accept(c.Request.Context(), username, req.RequestID)
		message = "friend request accepted"
	case ActionDecline:
		err = h.service.Decline(c.Request.Context(), username, req.RequestID)
		message = "friend request declined"
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// List handles GET /friends/list.
func (h *Handler) List(c *gin.Context) {
	friends, err := h.service.Friends(c.Request.Context(), middleware.Username(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Friends: friends})
}

// Received handles GET /friends/requests/received.
func (h *Handler) Received(c *gin.Context) {
	requests, err := h.service.ReceivedRequests(c.Request.Context(), middleware.Username(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Sent handles GET /friends/requests/sent.
func (h *Handler) Sent(c *gin.Context) {
	requests, err := h.service.SentRequests(c.Request.Context(), middleware.Username(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Remove handles DELETE /friends/remove/:friendId.
func (h *Handler) Remove(c *gin.Context) {
	friendID, err := strconv.ParseInt(c.Param("friendId"), 10, 64)
	if err != nil {
		httpapi.Abort(c, http.StatusBadRequest, "invalid friend id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.Username(c), friendID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "friend removed successfully"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrRequestNotFound), errors.Is(err, ErrNotFriends):
		httpapi.Abort(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSelfRequest), errors.Is(err, ErrDuplicateRequest),
		errors.Is(err, ErrAlreadyFriends), errors.Is(err, ErrNotPending):
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotRecipient):
		httpapi.Abort(c, http.StatusForbidden, err.Error())
	default:
		httpapi.Fail(c, err)
	}
}

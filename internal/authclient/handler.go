package authclient

import (
	"errors"
	"net/http"

	"github.com/azimmemon2002/socialhub/internal/httpapi"
	"github.com/azimmemon2002/socialhub/internal/notify"
	"github.com/azimmemon2002/socialhub/internal/profile"
	"github.com/gin-gonic/gin"
)

// Handler proxies registration and login to the auth server. Registration
// additionally mirrors the returned identity into the local store.
type Handler struct {
	client   Client
	profiles profile.Service
	notifier *notify.Notifier
}

func NewHandler(client Client, profiles profile.Service, notifier *notify.Notifier) *Handler {
	return &Handler{client: client, profiles: profiles, notifier: notifier}
}

// Register handles POST /auth/register on the user server.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.client.Register(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	// The remote registration already succeeded; mirroring is idempotent on
	// the remote id, so a failed attempt can be retried by registering again.
	err = h.profiles.CreateMirror(c.Request.Context(), profile.RemoteIdentity{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		httpapi.Fail(c, err)
		return
	}

	h.notifier.UserRegistered(user.Username)

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login on the user server. No local side effects.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.client.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) fail(c *gin.Context, err error) {
	var remote *RemoteError
	if errors.As(err, &remote) {
		httpapi.Abort(c, remote.Status, remote.Message)
		return
	}
	httpapi.Abort(c, http.StatusBadGateway, "failed to contact auth service")
}

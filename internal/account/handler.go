package account

import (
	"errors"
	"net/http"
	"strings"

	"github.com/azimmemon2002/socialhub/internal/httpapi"
	"github.com/azimmemon2002/socialhub/internal/token"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.service.Register(c.Request.Context(), req)
	if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		httpapi.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, details)
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		httpapi.Abort(c, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		httpapi.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Validate handles POST /auth/validate. The token comes from the
// Authorization header; the scheme prefix is stripped before verification.
func (h *Handler) Validate(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if raw == "" {
		httpapi.Abort(c, http.StatusUnauthorized, "authorization header is missing")
		return
	}

	details, err := h.service.Validate(c.Request.Context(), raw)
	if errors.Is(err, token.ErrInvalidToken) {
		httpapi.Abort(c, http.StatusUnauthorized, err.Error())
		return
	}
	if errors.Is(err, ErrUserNotFound) {
		httpapi.Abort(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		httpapi.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

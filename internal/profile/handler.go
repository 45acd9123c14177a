package profile

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

// GetMe handles GET /profile/me.
func (h *Handler) GetMe(c *gin.Context) {
	resp, err := h.service.GetByUsername(c.Request.Context(), middleware.Username(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMe handles PUT /profile/me.
func (h *Handler) UpdateMe(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), middleware.Username(c), req); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

// GetByID handles GET /profile/:id (admin only, gated in routing).
func (h *Handler) GetByID(c *gin.Context) {
	h.respondByID(c)
}

// View handles GET /profile/view/:id for any authenticated caller.
func (h *Handler) View(c *gin.Context) {
	h.respondByID(c)
}

func (h *Handler) respondByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Abort(c, http.StatusBadRequest, "invalid profile id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrProfileNotFound) {
		httpapi.Abort(c, http.StatusNotFound, err.Error())
		return
	}
	httpapi.Fail(c, err)
}

package post

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

// Create handles POST /posts/create.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.Username(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Like handles POST /posts/:id/like.
func (h *Handler) Like(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.service.Like(c.Request.Context(), middleware.Username(c), postID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post liked successfully"})
}

// Comment handles POST /posts/:id/comment.
func (h *Handler) Comment(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Comment(c.Request.Context(), middleware.Username(c), postID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /posts.
func (h *Handler) List(c *gin.Context) {
	page, size := pagination(c)
	posts, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListByUser handles GET /posts/user/:username.
func (h *Handler) ListByUser(c *gin.Context) {
	page, size := pagination(c)
	resp, err := h.service.ListByUsername(c.Request.Context(), c.Param("username"), page, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /posts/:id.
func (h *Handler) Delete(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.Username(c), postID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// Comments handles GET /posts/:id/comments.
func (h *Handler) Comments(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	comments, err := h.service.Comments(c.Request.Context(), postID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Likes handles GET /posts/:id/likes.
func (h *Handler) Likes(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	likes, err := h.service.Likes(c.Request.Context(), postID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (h *Handler) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.Abort(c, http.StatusBadRequest, "invalid post id")
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrUserNotFound):
		httpapi.Abort(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyLiked):
		httpapi.Abort(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotPostAuthor):
		httpapi.Abort(c, http.StatusForbidden, err.Error())
	default:
		httpapi.Fail(c, err)
	}
}

func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		size = 10
	}
	return page, size
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/service"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListByNotice handles GET /comments/:noticeId.
func (h *CommentHandler) ListByNotice(c *gin.Context) {
	noticeID := c.Param("noticeId")

	comments, err := h.commentService.ListByNotice(c.Request.Context(), noticeID)
	if err != nil {
		writeStoreError(c, err, "Comments Database ID not found")
		return
	}
	c.JSON(http.StatusOK, model.CommentListResponse{Comments: comments})
}

// Create handles POST /comments.
func (h *CommentHandler) Create(c *gin.Context) {
	var fields model.CommentCreate
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), fields)
	if err != nil {
		writeStoreError(c, err, "Comments Database ID not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

// Delete handles DELETE /comments/:id as a soft archive.
func (h *CommentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	comment, err := h.commentService.Archive(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "Comments Database ID not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}

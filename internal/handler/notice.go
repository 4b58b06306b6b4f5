package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/service"
)

// NoticeHandler handles notice board HTTP requests.
type NoticeHandler struct {
	noticeService *service.NoticeService
}

// NewNoticeHandler creates a new notice handler.
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// List handles GET /notices.
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.noticeService.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "Notices Database ID not found")
		return
	}
	c.JSON(http.StatusOK, model.NoticeListResponse{Notices: notices})
}

// Create handles POST /notices.
func (h *NoticeHandler) Create(c *gin.Context) {
	var fields model.NoticeCreate
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	notice, err := h.noticeService.Create(c.Request.Context(), fields)
	if err != nil {
		writeStoreError(c, err, "Notices Database ID not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "notice": notice})
}

// Update handles PATCH /notices/:id.
func (h *NoticeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patch model.NoticePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	notice, err := h.noticeService.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeStoreError(c, err, "Notices Database ID not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notice": notice})
}

// Delete handles DELETE /notices/:id as a soft archive.
func (h *NoticeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	notice, err := h.noticeService.Archive(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "Notices Database ID not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notice": notice})
}

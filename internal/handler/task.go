package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListDatabase handles GET /database.
func (h *TaskHandler) ListDatabase(c *gin.Context) {
	resp, err := h.taskService.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "Database ID not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /tasks. The body may use English or legacy
// field names; English wins when both are present.
func (h *TaskHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	fields, err := model.DecodeTaskCreate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), fields)
	if err != nil {
		writeStoreError(c, err, "Database ID not found")
		return
	}
	c.JSON(http.StatusOK, model.MutationResponse{Success: true, Page: task})
}

// Update handles PATCH /tasks/:id. Only fields present in the body
// change; an explicit empty deadline clears the due date.
func (h *TaskHandler) Update(c *gin.Context) {
	id := c.Param("id")

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	patch, err := model.DecodeTaskPatch(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("No fields to update", ""))
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeStoreError(c, err, "Database ID not found")
		return
	}
	c.JSON(http.StatusOK, model.MutationResponse{Success: true, Page: task})
}

// Delete handles DELETE /tasks/:id as a soft archive.
func (h *TaskHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	task, err := h.taskService.Archive(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "Database ID not found")
		return
	}
	c.JSON(http.StatusOK, model.MutationResponse{Success: true, Page: task})
}

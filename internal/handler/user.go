package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/service"
)

const (
	maxNameLength  = 100
	maxEmailLength = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserHandler handles registration and user administration.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles POST /register and POST /users/register. The
// operation is idempotent by email: repeat sign-ins return the
// existing record with its current role and status.
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if len(req.Email) > maxEmailLength || !emailRegex.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email format", ""))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		// Derive a display name from the email local part.
		req.Name = strings.SplitN(req.Email, "@", 2)[0]
	}
	if len(req.Name) > maxNameLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Name exceeds maximum length", ""))
		return
	}

	result, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		writeStoreError(c, err, "Users Database ID not configured")
		return
	}

	if result.Created {
		c.JSON(http.StatusCreated, model.RegisterResponse{
			Message: "User registered successfully",
			User:    result.User,
		})
		return
	}
	c.JSON(http.StatusOK, model.RegisterResponse{
		Message: "User already exists",
		User:    result.User,
	})
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "Users Database ID not found")
		return
	}
	c.JSON(http.StatusOK, model.UserListResponse{Users: users})
}

// UpdateStatus handles PATCH /users/:id/status. Admin-only by
// convention; the caller's own role is not checked here.
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var patch model.UserStatusPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("No fields to update", ""))
		return
	}

	user, err := h.userService.UpdateStatus(c.Request.Context(), id, patch)
	if err != nil {
		writeStoreError(c, err, "Users Database ID not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User status updated successfully",
		"user":    user,
	})
}

package handler

import (
	"errors"
	"net/http"

	"lms-backend/internal/middleware"
	"lms-backend/internal/repository"
	"lms-backend/internal/service"
	"lms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler serves the admin-only user management routes.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
}

type AssignRoleRequest struct {
	UserID string `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

// GetUsers lists all accounts
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"users": users,
		"count": len(users),
	})
}

// UpdateUser updates an account's profile fields
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.userService.UpdateUser(userID, req.FirstName, req.LastName, req.Email, principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrEmailTaken):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// AssignRole changes an account's role
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.userService.AssignRole(userID, req.Role, principal.UserID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrInvalidRole):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to assign role")
		}
		return
	}

	utils.MessageResponse(c, "Role assigned successfully")
}

// DeleteUser removes an account and its enrollments
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.userService.DeleteUser(userID, principal.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	utils.MessageResponse(c, "User deleted successfully")
}

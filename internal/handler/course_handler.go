package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lms-backend/internal/middleware"
	"lms-backend/internal/models"
	"lms-backend/internal/repository"
	"lms-backend/internal/service"
	"lms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

type CreateCourseRequest struct {
	Title            string `json:"title" binding:"required,max=200"`
	ShortDescription string `json:"shortDescription" binding:"max=500"`
	Description      string `json:"description"`
}

// GetCourses retrieves the full course catalog
func (h *CourseHandler) GetCourses(c *gin.Context) {
	courses, err := h.courseService.GetAllCourses()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

// GetCourse retrieves a specific course by ID
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid course ID")
		return
	}

	course, err := h.courseService.GetCourseByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Course not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch course")
		return
	}

	utils.SuccessResponse(c, course)
}

// GetTrainerCourses retrieves courses owned by the calling trainer
func (h *CourseHandler) GetTrainerCourses(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	courses, err := h.courseService.GetTrainerCourses(principal.UserID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

// CreateCourse creates a new course owned by the calling trainer
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	course := &models.Course{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
	}

	if err := h.courseService.CreateCourse(course, principal.UserID); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create course")
		return
	}

	utils.CreatedResponse(c, course)
}

// UpdateCourse updates a course owned by the calling trainer
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid course ID")
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	course, err := h.courseService.UpdateCourse(uint(id), req.Title, req.ShortDescription, req.Description, principal.UserID)
	if err != nil {
		respondCourseError(c, err, "Failed to update course")
		return
	}

	utils.SuccessResponse(c, course)
}

// DeleteCourse deletes a course owned by the calling trainer
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid course ID")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.courseService.DeleteCourse(uint(id), principal.UserID); err != nil {
		respondCourseError(c, err, "Failed to delete course")
		return
	}

	utils.MessageResponse(c, "Course deleted successfully")
}

func respondCourseError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Course not found")
	case errors.Is(err, service.ErrNotOwner):
		utils.ErrorResponse(c, http.StatusForbidden, "Only the owning trainer may modify this course")
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

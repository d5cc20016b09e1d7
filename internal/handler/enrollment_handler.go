package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lms-backend/internal/middleware"
	"lms-backend/internal/repository"
	"lms-backend/internal/service"
	"lms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

type EnrollRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// Enroll self-enrolls the caller into a course
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	enrollment, err := h.enrollmentService.Enroll(principal.UserID, req.CourseID)
	if err != nil {
		respondEnrollmentError(c, err, "Failed to enroll")
		return
	}

	utils.SuccessResponse(c, enrollment)
}

// AdminEnroll enrolls an arbitrary user into a course
func (h *EnrollmentHandler) AdminEnroll(c *gin.Context) {
	userID, courseID, ok := parseEnrollmentQuery(c)
	if !ok {
		return
	}

	enrollment, err := h.enrollmentService.Enroll(userID, courseID)
	if err != nil {
		respondEnrollmentError(c, err, "Failed to enroll")
		return
	}

	utils.SuccessResponse(c, enrollment)
}

// Unenroll removes a user's enrollment in a course
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	userID, courseID, ok := parseEnrollmentQuery(c)
	if !ok {
		return
	}

	if err := h.enrollmentService.Unenroll(userID, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Enrollment not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to unenroll")
		return
	}

	utils.MessageResponse(c, "Unenrolled successfully")
}

// GetCourseEnrollments returns the roster of a course
func (h *EnrollmentHandler) GetCourseEnrollments(c *gin.Context) {
	courseID, err := strconv.ParseUint(c.Query("courseId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid course ID")
		return
	}

	roster, err := h.enrollmentService.GetCourseRoster(uint(courseID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Course not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch enrollments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"enrollments": roster,
		"count":       len(roster),
	})
}

// GetMyCourses returns the courses the caller is enrolled in
func (h *EnrollmentHandler) GetMyCourses(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	courses, err := h.enrollmentService.GetUserCourses(principal.UserID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

func parseEnrollmentQuery(c *gin.Context) (uuid.UUID, uint, bool) {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, 0, false
	}

	courseID, err := strconv.ParseUint(c.Query("courseId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid course ID")
		return uuid.Nil, 0, false
	}

	return userID, uint(courseID), true
}

func respondEnrollmentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "User or course not found")
	case errors.Is(err, service.ErrAlreadyEnrolled):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

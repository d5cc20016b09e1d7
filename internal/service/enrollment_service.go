package service

import (
	"errors"
	"fmt"

	"lms-backend/internal/models"
	"lms-backend/internal/repository"

	"github.com/google/uuid"
)

type EnrollmentService struct {
	enrollmentRepo *repository.EnrollmentRepository
	courseRepo     *repository.CourseRepository
	userRepo       *repository.UserRepository
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
	}
}

// EnrolledUser is one roster entry for a course
type EnrolledUser struct {
	UserID     string `json:"userId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	EnrolledAt string `json:"enrollmentDate"`
}

// Enroll creates an enrollment after verifying both sides exist. The unique
// index makes the duplicate check race-safe; the Exists call just gives a
// cleaner error on the common path.
func (s *EnrollmentService) Enroll(userID uuid.UUID, courseID uint) (*models.Enrollment, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		return nil, err
	}

	exists, err := s.enrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if exists {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := &models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := s.enrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	return enrollment, nil
}

// Unenroll removes an enrollment
func (s *EnrollmentService) Unenroll(userID uuid.UUID, courseID uint) error {
	return s.enrollmentRepo.Delete(userID, courseID)
}

// GetCourseRoster returns the users enrolled in a course
func (s *EnrollmentService) GetCourseRoster(courseID uint) ([]EnrolledUser, error) {
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetByCourseID(courseID)
	if err != nil {
		return nil, err
	}

	roster := make([]EnrolledUser, 0, len(enrollments))
	for _, e := range enrollments {
		entry := EnrolledUser{
			UserID:     e.UserID.String(),
			EnrolledAt: e.EnrolledAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
		if e.User != nil {
			entry.FullName = e.User.FirstName + " " + e.User.LastName
			entry.Email = e.User.Email
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

// GetUserCourses returns the courses a user is enrolled in
func (s *EnrollmentService) GetUserCourses(userID uuid.UUID) ([]models.Course, error) {
	enrollments, err := s.enrollmentRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Course != nil {
			courses = append(courses, *e.Course)
		}
	}
	return courses, nil
}

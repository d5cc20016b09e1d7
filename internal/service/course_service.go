package service

import (
	"fmt"

	"lms-backend/internal/models"
	"lms-backend/internal/repository"

	"github.com/google/uuid"
)

type CourseService struct {
	courseRepo *repository.CourseRepository
	auditRepo  *repository.AuditRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, auditRepo *repository.AuditRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		auditRepo:  auditRepo,
	}
}

// GetAllCourses retrieves the full catalog
func (s *CourseService) GetAllCourses() ([]models.Course, error) {
	return s.courseRepo.GetAll()
}

// GetCourseByID retrieves a single course
func (s *CourseService) GetCourseByID(id uint) (*models.Course, error) {
	return s.courseRepo.GetByID(id)
}

// GetTrainerCourses retrieves courses owned by the given trainer
func (s *CourseService) GetTrainerCourses(trainerID uuid.UUID) ([]models.Course, error) {
	return s.courseRepo.GetByTrainerID(trainerID)
}

// CreateCourse creates a course owned by the calling trainer
func (s *CourseService) CreateCourse(course *models.Course, trainerID uuid.UUID) error {
	course.TrainerID = trainerID

	if err := s.courseRepo.Create(course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	trainerIDPtr := &trainerID
	_ = s.auditRepo.CreateAuditLog(trainerIDPtr, "course_create", fmt.Sprintf("Created course %q (ID: %d)", course.Title, course.ID))

	return nil
}

// UpdateCourse updates a course; only the owning trainer may do so
func (s *CourseService) UpdateCourse(id uint, title, shortDescription, description string, callerID uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if course.TrainerID != callerID {
		return nil, ErrNotOwner
	}

	course.Title = title
	course.ShortDescription = shortDescription
	course.Description = description
	course.Trainer = nil

	if err := s.courseRepo.Update(course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return course, nil
}

// DeleteCourse deletes a course; only the owning trainer may do so
func (s *CourseService) DeleteCourse(id uint, callerID uuid.UUID) error {
	course, err := s.courseRepo.GetByID(id)
	if err != nil {
		return err
	}

	if course.TrainerID != callerID {
		return ErrNotOwner
	}

	if err := s.courseRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	callerIDPtr := &callerID
	_ = s.auditRepo.CreateAuditLog(callerIDPtr, "course_delete", fmt.Sprintf("Deleted course %q (ID: %d)", course.Title, id))

	return nil
}

package repository

import (
	"errors"

	"lms-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepo(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts an enrollment. The composite unique index on
// (user_id, course_id) turns a concurrent double-enroll into ErrDuplicate.
func (r *EnrollmentRepository) Create(enrollment *models.Enrollment) error {
	err := r.db.Create(enrollment).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// GetByCourseID retrieves a course roster with user details preloaded
func (r *EnrollmentRepository) GetByCourseID(courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Where("course_id = ?", courseID).
		Preload("User").
		Order("enrolled_at ASC").
		Find(&enrollments).Error
	return enrollments, err
}

// GetByUserID retrieves a user's enrollments with course details preloaded
func (r *EnrollmentRepository) GetByUserID(userID uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Where("user_id = ?", userID).
		Preload("Course").
		Order("enrolled_at ASC").
		Find(&enrollments).Error
	return enrollments, err
}

// Exists reports whether a (user, course) enrollment already exists
func (r *EnrollmentRepository) Exists(userID uuid.UUID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes an enrollment by its (user, course) pair
func (r *EnrollmentRepository) Delete(userID uuid.UUID, courseID uint) error {
	res := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.Enrollment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

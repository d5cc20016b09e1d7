package repository

import (
	"errors"

	"lms-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// GetAll retrieves all courses with their trainer preloaded
func (r *CourseRepository) GetAll() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Preload("Trainer").Order("title ASC").Find(&courses).Error
	return courses, err
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.Preload("Trainer").First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// GetByTrainerID retrieves courses owned by a trainer
func (r *CourseRepository) GetByTrainerID(trainerID uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Where("trainer_id = ?", trainerID).Order("title ASC").Find(&courses).Error
	return courses, err
}

// Create creates a new course
func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// Update persists changes to an existing course
func (r *CourseRepository) Update(course *models.Course) error {
	return r.db.Save(course).Error
}

// Delete removes a course together with its enrollments and material rows
func (r *CourseRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.CourseMaterial{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Course{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

package repository

import (
	"errors"

	"lms-backend/internal/models"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepo(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Create creates a new course material record
func (r *MaterialRepository) Create(material *models.CourseMaterial) error {
	return r.db.Create(material).Error
}

// GetByCourseID retrieves all materials for a course
func (r *MaterialRepository) GetByCourseID(courseID uint) ([]models.CourseMaterial, error) {
	var materials []models.CourseMaterial
	err := r.db.Where("course_id = ?", courseID).
		Order("uploaded_at ASC").
		Find(&materials).Error
	return materials, err
}

// GetByID retrieves a material scoped to its course; a material id from
// another course is a not-found, not a leak
func (r *MaterialRepository) GetByID(courseID, materialID uint) (*models.CourseMaterial, error) {
	var material models.CourseMaterial
	err := r.db.Where("id = ? AND course_id = ?", materialID, courseID).
		First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// Delete removes a material record
func (r *MaterialRepository) Delete(courseID, materialID uint) error {
	res := r.db.Where("id = ? AND course_id = ?", materialID, courseID).
		Delete(&models.CourseMaterial{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"errors"
	"time"

	"lms-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail finds a user by email (the login key)
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by id
func (r *UserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// ListAll retrieves all users ordered by email
func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("email ASC").Find(&users).Error
	return users, err
}

// Update persists changes to an existing user
func (r *UserRepository) Update(user *models.User) error {
	err := r.db.Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// SetRefreshToken overwrites the stored refresh token and its expiry,
// implicitly invalidating the previous one
func (r *UserRepository) SetRefreshToken(id uuid.UUID, token string, expiresAt time.Time) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"refresh_token":            token,
			"refresh_token_expires_at": expiresAt,
		}).Error
}

// ClearRefreshToken removes the stored refresh token so future refresh
// attempts fail; issued access tokens are unaffected
func (r *UserRepository) ClearRefreshToken(id uuid.UUID) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"refresh_token":            nil,
			"refresh_token_expires_at": nil,
		}).Error
}

// Delete removes a user and their enrollments in one transaction
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values assignable to a user. New accounts always start as RoleUser;
// promotion is an admin action.
const (
	RoleUser    = "User"
	RoleTrainer = "Trainer"
	RoleAdmin   = "Admin"
)

// ValidRole reports whether role is one of the known role strings.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleTrainer || role == RoleAdmin
}

// User represents the users table
type User struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	FirstName    string    `gorm:"size:100" json:"firstName"`
	LastName     string    `gorm:"size:100" json:"lastName"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Role         string    `gorm:"not null;default:'User';size:20" json:"role"`

	// Refresh-token state, overwritten on every login/refresh and cleared on logout.
	RefreshToken          *string    `gorm:"size:255" json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`

	CreatedAt   time.Time    `json:"created_at"`
	Enrollments []Enrollment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a fresh UUID when none was set by the caller.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

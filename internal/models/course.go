package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents the courses table.
// The trainer is just a User expected to hold the Trainer role; that
// expectation is checked at the route level, not by a database constraint.
type Course struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"not null;size:200" json:"title"`
	ShortDescription string    `gorm:"size:500" json:"shortDescription"`
	Description      string    `gorm:"type:text" json:"description"`
	TrainerID        uuid.UUID `gorm:"type:char(36);not null;index" json:"trainerId"`
	CreatedAt        time.Time `json:"created_at"`

	Trainer     *User        `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Materials   []CourseMaterial `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Course model
func (Course) TableName() string {
	return "courses"
}

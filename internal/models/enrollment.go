package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a learner to a course. The composite unique index is the
// storage-level guard against double enrollment; handler checks alone are not
// enough under concurrent requests.
type Enrollment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_course" json:"userId"`
	CourseID   uint      `gorm:"not null;uniqueIndex:idx_user_course" json:"courseId"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolledAt"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// TableName specifies the table name for Enrollment model
func (Enrollment) TableName() string {
	return "enrollments"
}

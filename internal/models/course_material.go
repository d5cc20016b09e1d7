package models

import "time"

// CourseMaterial represents the course_materials table.
// FilePath is relative to the configured upload root; the original filename is
// kept only as the display title.
type CourseMaterial struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description string    `gorm:"size:500" json:"description"`
	FilePath    string    `gorm:"not null;size:500" json:"filePath"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
	CourseID    uint      `gorm:"not null;index" json:"courseId"`

	Course *Course `gorm:"foreignKey:CourseID" json:"-"`
}

// TableName specifies the table name for CourseMaterial model
func (CourseMaterial) TableName() string {
	return "course_materials"
}

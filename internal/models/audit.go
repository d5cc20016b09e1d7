package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents the audit_logs table
// Used for security tracking and admin action logging
type AuditLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:char(36);index" json:"user_id"`
	Action    string     `gorm:"size:100;not null" json:"action"`
	Details   string     `gorm:"type:text" json:"details"`
	CreatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

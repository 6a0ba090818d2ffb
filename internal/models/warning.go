package models

import (
	"time"

	"github.com/google/uuid"
)

// UserWarning records a moderator warning issued against a user, usually as
// the outcome of a report resolution.
type UserWarning struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ReportID  *uuid.UUID     `gorm:"type:uuid;index" json:"report_id,omitempty"`
	Category  ReportCategory `gorm:"size:50;not null" json:"category"`
	IssuedBy  uuid.UUID      `gorm:"type:uuid;not null" json:"issued_by"`
	CreatedAt time.Time      `json:"created_at"`
}

func (UserWarning) TableName() string {
	return "user_warnings"
}

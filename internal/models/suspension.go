package models

import (
	"time"

	"github.com/google/uuid"
)

// UserSuspension records a fixed-duration suspension. The user row's
// is_suspended flag and suspension_end_date mirror the latest record.
type UserSuspension struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ReportID  *uuid.UUID `gorm:"type:uuid;index" json:"report_id,omitempty"`
	StartsAt  time.Time  `gorm:"not null" json:"starts_at"`
	EndsAt    time.Time  `gorm:"not null" json:"ends_at"`
	IssuedBy  uuid.UUID  `gorm:"type:uuid;not null" json:"issued_by"`
	CreatedAt time.Time  `json:"created_at"`
}

func (UserSuspension) TableName() string {
	return "user_suspensions"
}

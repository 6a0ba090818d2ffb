package models

import (
	"time"

	"github.com/google/uuid"
)

// ModeratorAction is an append-only audit row written whenever a moderator
// touches a report. Never updated or deleted.
type ModeratorAction struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ModeratorID uuid.UUID        `gorm:"type:uuid;not null;index" json:"moderator_id"`
	ReportID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"report_id"`
	Action      ModerationAction `gorm:"size:50;not null" json:"action"`
	Notes       string           `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (ModeratorAction) TableName() string {
	return "moderator_actions"
}

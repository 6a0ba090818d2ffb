package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a user-authored SIF message, the content entity that reports
// reference. Removal is a moderator action, never a hard delete.
type Message struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	Body      string     `gorm:"size:2000;not null" json:"body"`
	IsRemoved bool       `gorm:"default:false;index" json:"is_removed"`
	RemovedAt *time.Time `json:"removed_at,omitempty"`
	RemovedBy *uuid.UUID `gorm:"type:uuid" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Author    User       `gorm:"foreignKey:AuthorID" json:"-"`
}

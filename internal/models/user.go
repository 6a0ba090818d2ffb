package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the SIF user directory record. The moderation engine mutates the
// suspension and ban flags; everything else belongs to the auth layer.
type User struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password          string         `gorm:"not null" json:"-"`
	DisplayName       string         `gorm:"size:100" json:"display_name"`
	Role              string         `gorm:"size:20;default:'user'" json:"role"`
	AppleUserID       *string        `gorm:"size:255;index" json:"-"`
	AuthProvider      string         `gorm:"size:50;default:'email'" json:"-"`
	IsSuspended       bool           `gorm:"default:false" json:"is_suspended"`
	SuspensionEndDate *time.Time     `json:"suspension_end_date,omitempty"`
	IsBanned          bool           `gorm:"default:false" json:"is_banned"`
	BannedDate        *time.Time     `json:"banned_date,omitempty"`
	BannedBy          *uuid.UUID     `gorm:"type:uuid" json:"-"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// SuspendedNow reports whether the user's suspension is still in effect.
func (u *User) SuspendedNow(now time.Time) bool {
	if !u.IsSuspended {
		return false
	}
	if u.SuspensionEndDate == nil {
		return true
	}
	return now.Before(*u.SuspensionEndDate)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientConfig is a remote-config key the iOS client reads at launch
// (report categories, block reasons, length caps, maintenance flag).
type ClientConfig struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Key       string    `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	Type      string    `gorm:"size:20;default:'string'" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ClientConfig) TableName() string {
	return "client_config"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlockReason is the optional reason a user gives when blocking another.
type BlockReason string

const (
	BlockReasonHarassment    BlockReason = "harassment"
	BlockReasonSpam          BlockReason = "spam"
	BlockReasonInappropriate BlockReason = "inappropriate"
	BlockReasonOther         BlockReason = "other"
	BlockReasonUnspecified   BlockReason = "unspecified"
)

func (r BlockReason) Valid() bool {
	switch r {
	case BlockReasonHarassment, BlockReasonSpam, BlockReasonInappropriate,
		BlockReasonOther, BlockReasonUnspecified:
		return true
	}
	return false
}

// Block implements user blocking (Apple Guideline 1.2 - immediate content hiding).
// The unique index on (blocker_id, blocked_id) enforces one row per pair.
type Block struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	BlockerID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_blocks_pair" json:"blocker_id"`
	BlockedID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_blocks_pair;index" json:"blocked_id"`
	Reason    BlockReason `gorm:"size:50;default:'unspecified'" json:"reason"`
	CreatedAt time.Time   `json:"created_at"`
	Blocker   User        `gorm:"foreignKey:BlockerID" json:"-"`
	Blocked   User        `gorm:"foreignKey:BlockedID" json:"-"`
}

func (Block) TableName() string {
	return "blocks"
}

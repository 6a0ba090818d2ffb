package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/models"
)

// SubmitReportRequest names only the content; the author is resolved
// server-side from the message row.
type SubmitReportRequest struct {
	ContentID uuid.UUID `json:"content_id"`
	Category  string    `json:"category"`
	Reason    string    `json:"reason,omitempty"`
}

type ResolveReportRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes,omitempty"`
}

type DismissReportRequest struct {
	Notes string `json:"notes,omitempty"`
}

type BlockUserRequest struct {
	BlockedID uuid.UUID `json:"blocked_id"`
	Reason    string    `json:"reason,omitempty"`
}

// ContentReportStats is the aggregate view of reports against one message.
type ContentReportStats struct {
	ContentID        uuid.UUID                     `json:"content_id"`
	TotalReports     int                           `json:"total_reports"`
	PendingReports   int                           `json:"pending_reports"`
	ReasonBreakdown  map[models.ReportCategory]int `json:"reason_breakdown"`
	MostRecentReport *time.Time                    `json:"most_recent_report,omitempty"`
}

// BlockingInfo is the bidirectional blocking view for one user.
type BlockingInfo struct {
	BlockedUsers   []uuid.UUID `json:"blocked_users"`
	BlockedByUsers []uuid.UUID `json:"blocked_by_users"`
}

// BlockedUserDetail is a block row joined with user directory display fields.
type BlockedUserDetail struct {
	BlockID     uuid.UUID          `json:"block_id"`
	BlockedID   uuid.UUID          `json:"blocked_id"`
	DisplayName string             `json:"display_name"`
	Email       string             `json:"email"`
	Reason      models.BlockReason `json:"reason"`
	CreatedAt   time.Time          `json:"created_at"`
}

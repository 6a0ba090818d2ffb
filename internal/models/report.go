package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportCategory is the reporter-selected reason for a report.
type ReportCategory string

const (
	CategorySpam                 ReportCategory = "spam"
	CategoryHarassment           ReportCategory = "harassment"
	CategoryInappropriateContent ReportCategory = "inappropriate_content"
	CategoryFalseInformation     ReportCategory = "false_information"
	CategoryCopyright            ReportCategory = "copyright"
	CategoryOther                ReportCategory = "other"
)

func AllReportCategories() []ReportCategory {
	return []ReportCategory{
		CategorySpam,
		CategoryHarassment,
		CategoryInappropriateContent,
		CategoryFalseInformation,
		CategoryCopyright,
		CategoryOther,
	}
}

func (c ReportCategory) Valid() bool {
	switch c {
	case CategorySpam, CategoryHarassment, CategoryInappropriateContent,
		CategoryFalseInformation, CategoryCopyright, CategoryOther:
		return true
	}
	return false
}

// ReportStatus is the workflow state of a report.
// pending and under_review are open; resolved and dismissed are terminal.
type ReportStatus string

const (
	StatusPending     ReportStatus = "pending"
	StatusUnderReview ReportStatus = "under_review"
	StatusResolved    ReportStatus = "resolved"
	StatusDismissed   ReportStatus = "dismissed"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

func (s ReportStatus) Terminal() bool {
	return s == StatusResolved || s == StatusDismissed
}

// CanTransitionTo reports whether the workflow allows moving to next.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusUnderReview || next == StatusResolved || next == StatusDismissed
	case StatusUnderReview:
		return next == StatusResolved || next == StatusDismissed
	}
	return false
}

// ModerationAction is what a moderator did when resolving a report.
type ModerationAction string

const (
	ActionNone           ModerationAction = "no_action"
	ActionContentRemoved ModerationAction = "content_removed"
	ActionUserWarned     ModerationAction = "user_warned"
	ActionUserSuspended  ModerationAction = "user_suspended"
	ActionUserBanned     ModerationAction = "user_banned"
)

func (a ModerationAction) Valid() bool {
	switch a {
	case ActionNone, ActionContentRemoved, ActionUserWarned, ActionUserSuspended, ActionUserBanned:
		return true
	}
	return false
}

// Report implements UGC safety governance (Apple Guideline 1.2).
// At most one open report may exist per (reporter, content) pair.
type Report struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_reports_pair" json:"reporter_id"`
	ContentID       uuid.UUID        `gorm:"type:uuid;not null;index:idx_reports_pair;index" json:"content_id"`
	ContentAuthorID uuid.UUID        `gorm:"type:uuid;not null;index" json:"content_author_id"`
	Category        ReportCategory   `gorm:"size:50;not null" json:"category"`
	Reason          string           `gorm:"size:500" json:"reason,omitempty"`
	Status          ReportStatus     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ModeratorID     *uuid.UUID       `gorm:"type:uuid" json:"moderator_id,omitempty"`
	ModeratorNotes  string           `gorm:"size:1000" json:"moderator_notes,omitempty"`
	ActionTaken     ModerationAction `gorm:"size:50" json:"action_taken,omitempty"`
	ResolvedAt      *time.Time       `json:"resolved_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Reporter        User             `gorm:"foreignKey:ReporterID" json:"-"`
}

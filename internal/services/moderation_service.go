package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/metrics"
	"github.com/rdsimon13/sif-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrContentNotFound = errors.New("reported content not found")
	ErrUserNotFound    = errors.New("user not found")
)

// ModerationService executes moderator decisions: it resolves the report and
// applies the chosen action against the content and user directory in a
// single transaction, so a failed side effect never leaves a resolved report
// behind.
type ModerationService struct {
	db                 *gorm.DB
	suspensionDuration time.Duration
}

func NewModerationService(db *gorm.DB, suspensionDuration time.Duration) *ModerationService {
	if suspensionDuration <= 0 {
		suspensionDuration = 7 * 24 * time.Hour
	}
	return &ModerationService{db: db, suspensionDuration: suspensionDuration}
}

// StartReview moves a pending report into under_review.
func (s *ModerationService) StartReview(moderatorID, reportID uuid.UUID) (*models.Report, error) {
	reports := NewReportService(s.db)
	return reports.UpdateReportStatus(reportID, moderatorID, models.StatusUnderReview, "", "")
}

// DismissReport closes a report without action.
func (s *ModerationService) DismissReport(moderatorID, reportID uuid.UUID, notes string) (*models.Report, error) {
	reports := NewReportService(s.db)
	report, err := reports.UpdateReportStatus(reportID, moderatorID, models.StatusDismissed, models.ActionNone, notes)
	if err != nil {
		return nil, err
	}
	metrics.ReportsResolved.WithLabelValues(string(models.ActionNone)).Inc()
	s.RefreshPendingCount()
	return report, nil
}

// ModerateReport resolves a report with the given action and executes the
// action's side effects.
func (s *ModerationService) ModerateReport(moderatorID, reportID uuid.UUID, action models.ModerationAction, notes string) (*models.Report, error) {
	if !action.Valid() {
		return nil, ErrInvalidAction
	}

	var report *models.Report
	err := s.db.Transaction(func(tx *gorm.DB) error {
		reports := NewReportService(tx)
		var err error
		report, err = reports.UpdateReportStatus(reportID, moderatorID, models.StatusResolved, action, notes)
		if err != nil {
			return err
		}
		return s.applyAction(tx, moderatorID, report, action)
	})
	if err != nil {
		return nil, err
	}

	metrics.ReportsResolved.WithLabelValues(string(action)).Inc()
	s.RefreshPendingCount()
	return report, nil
}

func (s *ModerationService) applyAction(tx *gorm.DB, moderatorID uuid.UUID, report *models.Report, action models.ModerationAction) error {
	now := time.Now().UTC()

	switch action {
	case models.ActionNone:
		return nil

	case models.ActionContentRemoved:
		result := tx.Model(&models.Message{}).
			Where("id = ?", report.ContentID).
			Updates(map[string]interface{}{
				"is_removed": true,
				"removed_at": now,
				"removed_by": moderatorID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to remove content: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrContentNotFound
		}
		return nil

	case models.ActionUserWarned:
		warning := models.UserWarning{
			ID:       uuid.New(),
			UserID:   report.ContentAuthorID,
			ReportID: &report.ID,
			Category: report.Category,
			IssuedBy: moderatorID,
		}
		if err := tx.Create(&warning).Error; err != nil {
			return fmt.Errorf("failed to create warning: %w", err)
		}
		return nil

	case models.ActionUserSuspended:
		end := now.Add(s.suspensionDuration)
		suspension := models.UserSuspension{
			ID:       uuid.New(),
			UserID:   report.ContentAuthorID,
			ReportID: &report.ID,
			StartsAt: now,
			EndsAt:   end,
			IssuedBy: moderatorID,
		}
		if err := tx.Create(&suspension).Error; err != nil {
			return fmt.Errorf("failed to create suspension: %w", err)
		}
		result := tx.Model(&models.User{}).
			Where("id = ?", report.ContentAuthorID).
			Updates(map[string]interface{}{
				"is_suspended":        true,
				"suspension_end_date": end,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to flag user suspended: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil

	case models.ActionUserBanned:
		result := tx.Model(&models.User{}).
			Where("id = ?", report.ContentAuthorID).
			Updates(map[string]interface{}{
				"is_banned":   true,
				"banned_date": now,
				"banned_by":   moderatorID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to flag user banned: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	}

	return ErrInvalidAction
}

// PendingReportCount returns the size of the pending queue.
func (s *ModerationService) PendingReportCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Report{}).
		Where("status = ?", models.StatusPending).
		Count(&count).Error
	return count, err
}

// RefreshPendingCount republishes the pending-queue gauge. Best effort: a
// count failure is logged and the gauge reset to zero, never propagated.
func (s *ModerationService) RefreshPendingCount() {
	count, err := s.PendingReportCount()
	if err != nil {
		slog.Error("failed to refresh pending report count", "error", err)
		metrics.PendingReports.Set(0)
		return
	}
	metrics.PendingReports.Set(float64(count))
}

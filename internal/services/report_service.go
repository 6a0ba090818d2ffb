package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/dto"
	"github.com/rdsimon13/sif-backend/internal/metrics"
	"github.com/rdsimon13/sif-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSelfReport        = errors.New("cannot report your own content")
	ErrAlreadyReported   = errors.New("content already reported")
	ErrReportNotFound    = errors.New("report not found")
	ErrInvalidCategory   = errors.New("invalid report category")
	ErrInvalidStatus     = errors.New("invalid report status")
	ErrInvalidAction     = errors.New("invalid moderation action")
	ErrInvalidTransition = errors.New("report status transition not allowed")
	ErrReasonTooLong     = errors.New("report reason exceeds 500 characters")
)

const maxReasonLength = 500

// openStatuses marks the non-terminal states that count as an active report
// for the duplicate-submission check. A resolved or dismissed report does not
// prevent the same reporter from reporting the same content again.
var openStatuses = []models.ReportStatus{models.StatusPending, models.StatusUnderReview}

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// SubmitReport files a new report with status pending. The reporter identity
// is an explicit parameter; handlers resolve it from the JWT before calling.
// The content author is resolved from the message row, never taken from the
// request, so moderation side effects always land on the real author.
func (s *ReportService) SubmitReport(reporterID, contentID uuid.UUID, category models.ReportCategory, reason string) (*models.Report, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	if len(reason) > maxReasonLength {
		return nil, ErrReasonTooLong
	}

	var content models.Message
	if err := s.db.First(&content, "id = ?", contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to load reported content: %w", err)
	}
	if reporterID == content.AuthorID {
		return nil, ErrSelfReport
	}

	// Check-then-act: not atomic against concurrent submissions of the same
	// pair, acceptable at this traffic volume.
	var existing models.Report
	err := s.db.Where("reporter_id = ? AND content_id = ? AND status IN ?",
		reporterID, contentID, openStatuses).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyReported
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing reports: %w", err)
	}

	report := models.Report{
		ID:              uuid.New(),
		ReporterID:      reporterID,
		ContentID:       contentID,
		ContentAuthorID: content.AuthorID,
		Category:        category,
		Reason:          reason,
		Status:          models.StatusPending,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	metrics.ReportsSubmitted.WithLabelValues(string(category)).Inc()
	return &report, nil
}

// GetReport fetches a single report by id.
func (s *ReportService) GetReport(reportID uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// GetReportsForContent lists every report filed against one message,
// newest first.
func (s *ReportService) GetReportsForContent(contentID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.Where("content_id = ?", contentID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// GetPendingReports returns the FIFO moderation queue: pending reports,
// oldest first.
func (s *ReportService) GetPendingReports(limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := s.db.Model(&models.Report{}).Where("status = ?", models.StatusPending)
	query.Count(&total)

	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// GetReportsByStatus lists reports in the given state, newest first.
func (s *ReportService) GetReportsByStatus(status models.ReportStatus, limit, offset int) ([]models.Report, int64, error) {
	if !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}

	var reports []models.Report
	var total int64

	query := s.db.Model(&models.Report{}).Where("status = ?", status)
	query.Count(&total)

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// UpdateReportStatus moves a report through the workflow and appends the
// audit row, atomically. Terminal transitions also stamp the moderator and
// resolution time.
func (s *ReportService) UpdateReportStatus(reportID, moderatorID uuid.UUID, newStatus models.ReportStatus, action models.ModerationAction, notes string) (*models.Report, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}
	if action != "" && !action.Valid() {
		return nil, ErrInvalidAction
	}

	var report models.Report
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, "id = ?", reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReportNotFound
			}
			return err
		}

		if !report.Status.CanTransitionTo(newStatus) {
			return ErrInvalidTransition
		}

		updates := map[string]interface{}{
			"status":          newStatus,
			"moderator_id":    moderatorID,
			"moderator_notes": notes,
		}
		if newStatus.Terminal() {
			now := time.Now().UTC()
			updates["resolved_at"] = now
			updates["action_taken"] = action
			report.ResolvedAt = &now
			report.ActionTaken = action
		}
		if err := tx.Model(&report).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update report: %w", err)
		}

		auditAction := action
		if auditAction == "" {
			auditAction = models.ActionNone
		}
		audit := models.ModeratorAction{
			ID:          uuid.New(),
			ModeratorID: moderatorID,
			ReportID:    report.ID,
			Action:      auditAction,
			Notes:       notes,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return fmt.Errorf("failed to append moderator action: %w", err)
		}

		report.Status = newStatus
		report.ModeratorID = &moderatorID
		report.ModeratorNotes = notes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetContentReportStats aggregates the reports filed against one message.
func (s *ReportService) GetContentReportStats(contentID uuid.UUID) (*dto.ContentReportStats, error) {
	reports, err := s.GetReportsForContent(contentID)
	if err != nil {
		return nil, err
	}

	stats := &dto.ContentReportStats{
		ContentID:       contentID,
		TotalReports:    len(reports),
		ReasonBreakdown: make(map[models.ReportCategory]int),
	}
	for _, r := range reports {
		stats.ReasonBreakdown[r.Category]++
		if r.Status == models.StatusPending {
			stats.PendingReports++
		}
		if stats.MostRecentReport == nil || r.CreatedAt.After(*stats.MostRecentReport) {
			t := r.CreatedAt
			stats.MostRecentReport = &t
		}
	}
	return stats, nil
}

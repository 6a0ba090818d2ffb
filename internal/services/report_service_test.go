package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	reporter := createUser(t, db, "reporter@test.com")
	author := createUser(t, db, "author@test.com")
	msg := createMessage(t, db, author.ID, "hello")

	report, err := svc.SubmitReport(reporter.ID, msg.ID, models.CategorySpam, "spammy link")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, report.Status)
	assert.Equal(t, models.CategorySpam, report.Category)
	assert.Equal(t, reporter.ID, report.ReporterID)
	assert.Nil(t, report.ResolvedAt)
}

func TestSubmitReportValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	reporter := createUser(t, db, "reporter@test.com")
	author := createUser(t, db, "author@test.com")
	msg := createMessage(t, db, author.ID, "hello")

	t.Run("own content", func(t *testing.T) {
		_, err := svc.SubmitReport(author.ID, msg.ID, models.CategorySpam, "")
		assert.ErrorIs(t, err, ErrSelfReport)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.SubmitReport(reporter.ID, msg.ID, "bogus", "")
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("reason too long", func(t *testing.T) {
		_, err := svc.SubmitReport(reporter.ID, msg.ID, models.CategorySpam, strings.Repeat("a", 501))
		assert.ErrorIs(t, err, ErrReasonTooLong)
	})
}

func TestSubmitReportResolvesAuthorFromContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	reporter := createUser(t, db, "reporter@test.com")
	author := createUser(t, db, "author@test.com")
	bystander := createUser(t, db, "bystander@test.com")
	moderator := createUser(t, db, "mod@test.com")
	msg := createMessage(t, db, author.ID, "hello")

	// The recorded author comes from the message row, not from anything
	// the reporter claims.
	report, err := svc.SubmitReport(reporter.ID, msg.ID, models.CategoryHarassment, "")
	require.NoError(t, err)
	assert.Equal(t, author.ID, report.ContentAuthorID)

	// Sanctions land on the message's real author and nobody else.
	mod := NewModerationService(db, 0)
	_, err = mod.ModerateReport(moderator.ID, report.ID, models.ActionUserBanned, "")
	require.NoError(t, err)

	var a, b models.User
	require.NoError(t, db.First(&a, "id = ?", author.ID).Error)
	require.NoError(t, db.First(&b, "id = ?", bystander.ID).Error)
	assert.True(t, a.IsBanned)
	assert.False(t, b.IsBanned)
}

func TestSubmitReportUnknownContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	reporter := createUser(t, db, "reporter@test.com")

	_, err := svc.SubmitReport(reporter.ID, uuid.New(), models.CategorySpam, "")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestSubmitReportDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	reporter := createUser(t, db, "reporter@test.com")
	moderator := createUser(t, db, "mod@test.com")
	author := createUser(t, db, "author@test.com")
	msg := createMessage(t, db, author.ID, "hello")

	first, err := svc.SubmitReport(reporter.ID, msg.ID, models.CategorySpam, "")
	require.NoError(t, err)

	// A second report while the first is still open is rejected.
	_, err = svc.SubmitReport(reporter.ID, msg.ID, models.CategoryHarassment, "")
	assert.ErrorIs(t, err, ErrAlreadyReported)

	// Same while under review.
	_, err = svc.UpdateReportStatus(first.ID, moderator.ID, models.StatusUnderReview, "", "")
	require.NoError(t, err)
	_, err = svc.SubmitReport(reporter.ID, msg.ID, models.CategorySpam, "")
	assert.ErrorIs(t, err, ErrAlreadyReported)

	// After resolution the same user may report the content again.
	_, err = svc.UpdateReportStatus(first.ID, moderator.ID, models.StatusResolved, models.ActionNone, "")
	require.NoError(t, err)
	_, err = svc.SubmitReport(reporter.ID, msg.ID, models.CategorySpam, "again")
	assert.NoError(t, err)

	// A different reporter was never blocked from reporting.
	other := createUser(t, db, "other@test.com")
	_, err = svc.SubmitReport(other.ID, msg.ID, models.CategorySpam, "")
	assert.NoError(t, err)
}

func TestPendingQueueIsOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	author := createUser(t, db, "author@test.com")
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		reporter := createUser(t, db, string(rune('a'+i))+"@test.com")
		msg := createMessage(t, db, author.ID, "msg")
		r, err := svc.SubmitReport(reporter.ID, msg.ID, models.CategorySpam, "")
		require.NoError(t, err)
		// Newest submission gets the oldest timestamp.
		backdate(t, db, r.ID, base.Add(-time.Duration(i)*time.Hour))
		ids = append(ids, r.ID)
	}

	reports, total, err := svc.GetPendingReports(10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, reports, 3)
	assert.Equal(t, ids[2], reports[0].ID)
	assert.Equal(t, ids[1], reports[1].ID)
	assert.Equal(t, ids[0], reports[2].ID)
}

func TestGetReportsByStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	reporter := createUser(t, db, "reporter@test.com")
	moderator := createUser(t, db, "mod@test.com")
	author := createUser(t, db, "author@test.com")

	msg1 := createMessage(t, db, author.ID, "one")
	msg2 := createMessage(t, db, author.ID, "two")

	r1, err := svc.SubmitReport(reporter.ID, msg1.ID, models.CategorySpam, "")
	require.NoError(t, err)
	_, err = svc.SubmitReport(reporter.ID, msg2.ID, models.CategorySpam, "")
	require.NoError(t, err)

	_, err = svc.UpdateReportStatus(r1.ID, moderator.ID, models.StatusDismissed, models.ActionNone, "not actionable")
	require.NoError(t, err)

	pending, total, err := svc.GetReportsByStatus(models.StatusPending, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, pending, 1)

	dismissed, total, err := svc.GetReportsByStatus(models.StatusDismissed, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, dismissed, 1)
	assert.Equal(t, r1.ID, dismissed[0].ID)

	_, _, err = svc.GetReportsByStatus("nonsense", 10, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateReportStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	reporter := createUser(t, db, "reporter@test.com")
	moderator := createUser(t, db, "mod@test.com")
	author := createUser(t, db, "author@test.com")
	msg := createMessage(t, db, author.ID, "hello")

	report, err := svc.SubmitReport(reporter.ID, msg.ID, models.CategoryHarassment, "")
	require.NoError(t, err)

	updated, err := svc.UpdateReportStatus(report.ID, moderator.ID, models.StatusUnderReview, "", "looking")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, updated.Status)
	require.NotNil(t, updated.ModeratorID)
	assert.Equal(t, moderator.ID, *updated.ModeratorID)
	assert.Nil(t, updated.ResolvedAt)

	updated, err = svc.UpdateReportStatus(report.ID, moderator.ID, models.StatusResolved, models.ActionUserWarned, "warned")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.Equal(t, models.ActionUserWarned, updated.ActionTaken)
	require.NotNil(t, updated.ResolvedAt)

	// Terminal states are frozen.
	_, err = svc.UpdateReportStatus(report.ID, moderator.ID, models.StatusDismissed, models.ActionNone, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.UpdateReportStatus(report.ID, moderator.ID, models.StatusPending, "", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Every touch left an audit row.
	var audits []models.ModeratorAction
	require.NoError(t, db.Where("report_id = ?", report.ID).Find(&audits).Error)
	assert.Len(t, audits, 2)
}

func TestUpdateReportStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	moderator := createUser(t, db, "mod@test.com")

	_, err := svc.UpdateReportStatus(uuid.New(), moderator.ID, models.StatusResolved, models.ActionNone, "")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestGetContentReportStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	moderator := createUser(t, db, "mod@test.com")
	author := createUser(t, db, "author@test.com")
	msg := createMessage(t, db, author.ID, "hello")

	categories := []models.ReportCategory{
		models.CategorySpam, models.CategorySpam, models.CategoryHarassment,
	}
	var last *models.Report
	for i, cat := range categories {
		reporter := createUser(t, db, string(rune('a'+i))+"@stats.com")
		r, err := svc.SubmitReport(reporter.ID, msg.ID, cat, "")
		require.NoError(t, err)
		last = r
	}
	_, err := svc.UpdateReportStatus(last.ID, moderator.ID, models.StatusDismissed, models.ActionNone, "")
	require.NoError(t, err)

	stats, err := svc.GetContentReportStats(msg.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReports)
	assert.Equal(t, 2, stats.PendingReports)
	assert.Equal(t, 2, stats.ReasonBreakdown[models.CategorySpam])
	assert.Equal(t, 1, stats.ReasonBreakdown[models.CategoryHarassment])
	require.NotNil(t, stats.MostRecentReport)

	empty, err := svc.GetContentReportStats(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalReports)
	assert.Nil(t, empty.MostRecentReport)
}

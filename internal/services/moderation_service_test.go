package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newModerationFixture(t *testing.T) (*ModerationService, *ReportService, *testFixture) {
	db := newTestDB(t)
	f := &testFixture{
		db:        db,
		reporter:  createUser(t, db, "reporter@test.com"),
		moderator: createUser(t, db, "mod@test.com"),
		author:    createUser(t, db, "author@test.com"),
	}
	f.message = createMessage(t, db, f.author.ID, "offending message")
	return NewModerationService(db, 7*24*time.Hour), NewReportService(db), f
}

type testFixture struct {
	db        *gorm.DB
	reporter  *models.User
	moderator *models.User
	author    *models.User
	message   *models.Message
}

func (f *testFixture) submit(t *testing.T, reports *ReportService) *models.Report {
	t.Helper()
	r, err := reports.SubmitReport(f.reporter.ID, f.message.ID, models.CategoryHarassment, "")
	require.NoError(t, err)
	return r
}

func TestStartReview(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	updated, err := svc.StartReview(f.moderator.ID, report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, updated.Status)
}

func TestDismissReport(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	updated, err := svc.DismissReport(f.moderator.ID, report.ID, "not a violation")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDismissed, updated.Status)
	assert.Equal(t, models.ActionNone, updated.ActionTaken)
	require.NotNil(t, updated.ResolvedAt)

	// Dismissal never touches the content or the author.
	var msg models.Message
	require.NoError(t, f.db.First(&msg, "id = ?", f.message.ID).Error)
	assert.False(t, msg.IsRemoved)

	var author models.User
	require.NoError(t, f.db.First(&author, "id = ?", f.author.ID).Error)
	assert.False(t, author.IsSuspended)
	assert.False(t, author.IsBanned)
}

func TestModerateReportContentRemoved(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	updated, err := svc.ModerateReport(f.moderator.ID, report.ID, models.ActionContentRemoved, "removed")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.Equal(t, models.ActionContentRemoved, updated.ActionTaken)

	var msg models.Message
	require.NoError(t, f.db.First(&msg, "id = ?", f.message.ID).Error)
	assert.True(t, msg.IsRemoved)
	require.NotNil(t, msg.RemovedBy)
	assert.Equal(t, f.moderator.ID, *msg.RemovedBy)
	require.NotNil(t, msg.RemovedAt)
}

func TestModerateReportUserWarned(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	_, err := svc.ModerateReport(f.moderator.ID, report.ID, models.ActionUserWarned, "first strike")
	require.NoError(t, err)

	var warnings []models.UserWarning
	require.NoError(t, f.db.Where("user_id = ?", f.author.ID).Find(&warnings).Error)
	require.Len(t, warnings, 1)
	assert.Equal(t, models.CategoryHarassment, warnings[0].Category)
	assert.Equal(t, f.moderator.ID, warnings[0].IssuedBy)
}

func TestModerateReportUserSuspended(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	before := time.Now().UTC()
	_, err := svc.ModerateReport(f.moderator.ID, report.ID, models.ActionUserSuspended, "")
	require.NoError(t, err)

	var author models.User
	require.NoError(t, f.db.First(&author, "id = ?", f.author.ID).Error)
	assert.True(t, author.IsSuspended)
	require.NotNil(t, author.SuspensionEndDate)

	// Suspension runs for seven days.
	want := before.Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, want, *author.SuspensionEndDate, time.Minute)

	var susp models.UserSuspension
	require.NoError(t, f.db.First(&susp, "user_id = ?", f.author.ID).Error)
	assert.Equal(t, f.moderator.ID, susp.IssuedBy)
}

func TestModerateReportUserBanned(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	_, err := svc.ModerateReport(f.moderator.ID, report.ID, models.ActionUserBanned, "repeat offender")
	require.NoError(t, err)

	var author models.User
	require.NoError(t, f.db.First(&author, "id = ?", f.author.ID).Error)
	assert.True(t, author.IsBanned)
	require.NotNil(t, author.BannedDate)
	require.NotNil(t, author.BannedBy)
	assert.Equal(t, f.moderator.ID, *author.BannedBy)
}

func TestModerateReportInvalidAction(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	_, err := svc.ModerateReport(f.moderator.ID, report.ID, "obliterate", "")
	assert.ErrorIs(t, err, ErrInvalidAction)

	// The report is untouched.
	fresh, err := reports.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, fresh.Status)
}

func TestModerateReportRollsBackOnMissingContent(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	// Removing a message that no longer exists fails the whole resolution.
	require.NoError(t, f.db.Delete(&models.Message{}, "id = ?", f.message.ID).Error)

	_, err := svc.ModerateReport(f.moderator.ID, report.ID, models.ActionContentRemoved, "")
	assert.ErrorIs(t, err, ErrContentNotFound)

	fresh, err := reports.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, fresh.Status)
	assert.Nil(t, fresh.ResolvedAt)
}

func TestModerateReportAlreadyResolved(t *testing.T) {
	svc, reports, f := newModerationFixture(t)
	report := f.submit(t, reports)

	_, err := svc.ModerateReport(f.moderator.ID, report.ID, models.ActionNone, "")
	require.NoError(t, err)

	_, err = svc.ModerateReport(f.moderator.ID, report.ID, models.ActionUserBanned, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEveryCategoryRoundTripsThroughWarning(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	svc := NewModerationService(db, 7*24*time.Hour)

	moderator := createUser(t, db, "mod@round.com")
	author := createUser(t, db, "author@round.com")

	for i, cat := range models.AllReportCategories() {
		t.Run(string(cat), func(t *testing.T) {
			reporter := createUser(t, db, fmt.Sprintf("reporter%d@round.com", i))
			msg := createMessage(t, db, author.ID, "msg")

			report, err := reports.SubmitReport(reporter.ID, msg.ID, cat, "")
			require.NoError(t, err)
			assert.Equal(t, models.StatusPending, report.Status)
			assert.Equal(t, cat, report.Category)

			pending, _, err := reports.GetPendingReports(100, 0)
			require.NoError(t, err)
			assert.True(t, containsReport(pending, report.ID))

			resolved, err := svc.ModerateReport(moderator.ID, report.ID, models.ActionUserWarned, "")
			require.NoError(t, err)
			assert.Equal(t, models.StatusResolved, resolved.Status)

			byStatus, _, err := reports.GetReportsByStatus(models.StatusResolved, 100, 0)
			require.NoError(t, err)
			assert.True(t, containsReport(byStatus, report.ID))

			// The issued warning carries the report's category through.
			var warning models.UserWarning
			require.NoError(t, db.First(&warning, "report_id = ?", report.ID).Error)
			assert.Equal(t, cat, warning.Category)
		})
	}
}

func containsReport(reports []models.Report, id uuid.UUID) bool {
	for _, r := range reports {
		if r.ID == id {
			return true
		}
	}
	return false
}

func TestPendingReportCount(t *testing.T) {
	svc, reports, f := newModerationFixture(t)

	count, err := svc.PendingReportCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	report := f.submit(t, reports)

	count, err = svc.PendingReportCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = svc.DismissReport(f.moderator.ID, report.ID, "")
	require.NoError(t, err)

	count, err = svc.PendingReportCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestModerateReportNotFound(t *testing.T) {
	svc, _, f := newModerationFixture(t)

	_, err := svc.ModerateReport(f.moderator.ID, uuid.New(), models.ActionNone, "")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

package logging

import (
	"log/slog"
	"time"

	"github.com/rdsimon13/sif-backend/internal/models"
	"gorm.io/gorm"
)

const (
	cleanupInterval  = 24 * time.Hour
	logRetentionDays = 30
)

// StartCleanup prunes system_logs rows past the retention window once per
// interval until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pruneLogs(db)
			case <-done:
				return
			}
		}
	}()
}

func pruneLogs(db *gorm.DB) {
	cutoff := time.Now().AddDate(0, 0, -logRetentionDays)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}

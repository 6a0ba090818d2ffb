package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The named
// shared-cache DSN keeps the schema alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	db, _ := newTestDBWithDSN(t)
	return db
}

func newTestDBWithDSN(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Message{},
		&models.Report{},
		&models.Block{},
		&models.ModeratorAction{},
		&models.UserWarning{},
		&models.UserSuspension{},
	))
	return db, dsn
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:          uuid.New(),
		Email:       email,
		Password:    "x",
		DisplayName: email,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createMessage(t *testing.T, db *gorm.DB, authorID uuid.UUID, body string) *models.Message {
	t.Helper()
	msg := &models.Message{
		ID:       uuid.New(),
		AuthorID: authorID,
		Body:     body,
	}
	require.NoError(t, db.Create(msg).Error)
	return msg
}

// backdate rewrites a report's created_at so ordering tests are
// deterministic regardless of clock resolution.
func backdate(t *testing.T, db *gorm.DB, reportID uuid.UUID, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&models.Report{}).
		Where("id = ?", reportID).
		Update("created_at", at).Error)
}

package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chans00n/myfc-app-sub001/internal/achievements"
	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/internal/notifications"
	"github.com/chans00n/myfc-app-sub001/internal/services"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"
)

// SetupTestDB initializes an in-memory SQLite DB and wires the engine the
// same way main does
func SetupTestDB(t *testing.T) {
	t.Helper()
	logger.Init("test")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.DB = db
	require.NoError(t, database.DB.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.UserAchievement{},
		&models.Notification{},
		&models.NotificationPreferences{},
	))

	catalog, err := achievements.NewCatalog(achievements.DefaultDefinitions())
	require.NoError(t, err)
	InitEngine(achievements.NewEngine(catalog, services.ComputeWorkoutStats, notifications.AchievementEarned))
	notifications.SetBus(notifications.NewMemoryBus())
}

func createTestUser(t *testing.T, id string) models.User {
	t.Helper()
	user := models.User{ID: id, Username: id, Email: id + "@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

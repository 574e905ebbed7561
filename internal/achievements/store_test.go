package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"

	apperrors "github.com/chans00n/myfc-app-sub001/pkg/errors"
)

// setupTestDB initializes an in-memory SQLite DB for testing
func setupTestDB(t *testing.T) {
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
}

func TestAward_CreatesRecord(t *testing.T) {
	setupTestDB(t)

	at := time.Now()
	record, err := Award("user_award_1", "streak-3", at)
	require.NoError(t, err)
	assert.Equal(t, "user_award_1", record.UserID)
	assert.Equal(t, "streak-3", record.AchievementID)

	var count int64
	database.DB.Model(&models.UserAchievement{}).Where("user_id = ?", "user_award_1").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAward_SecondCallIsNoOp(t *testing.T) {
	setupTestDB(t)

	first, err := Award("user_award_2", "streak-3", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	second, err := Award("user_award_2", "streak-3", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrAlreadyAwarded)

	// The second caller observes the first award's record
	assert.WithinDuration(t, first.EarnedAt, second.EarnedAt, time.Second)

	var count int64
	database.DB.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", "user_award_2", "streak-3").
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAward_DistinctPairsBothStored(t *testing.T) {
	setupTestDB(t)

	_, err := Award("user_award_3", "streak-3", time.Now())
	require.NoError(t, err)
	_, err = Award("user_award_3", "duration-60", time.Now())
	require.NoError(t, err)
	_, err = Award("user_award_4", "streak-3", time.Now())
	require.NoError(t, err)

	var count int64
	database.DB.Model(&models.UserAchievement{}).Where("user_id = ?", "user_award_3").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestEarnedIDs(t *testing.T) {
	setupTestDB(t)

	_, err := Award("user_earned_1", "streak-3", time.Now())
	require.NoError(t, err)
	_, err = Award("user_earned_1", "variety-5", time.Now())
	require.NoError(t, err)

	earned, err := EarnedIDs("user_earned_1")
	require.NoError(t, err)
	assert.True(t, earned["streak-3"])
	assert.True(t, earned["variety-5"])
	assert.False(t, earned["streak-7"])
}

func TestListEarned_OldestFirst(t *testing.T) {
	setupTestDB(t)

	_, err := Award("user_list_1", "duration-60", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = Award("user_list_1", "streak-3", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	records, err := ListEarned("user_list_1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "duration-60", records[0].AchievementID)
	assert.Equal(t, "streak-3", records[1].AchievementID)
}

package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"

	apperrors "github.com/chans00n/myfc-app-sub001/pkg/errors"
)

func TestEvaluateAndAward_AwardsAndNotifies(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	stats := WorkoutStats{CurrentStreakDays: 3, UniqueExercises: 5}
	var notified []string
	engine := NewEngine(catalog,
		func(userID string) (WorkoutStats, error) { return stats, nil },
		func(userID string, def Definition) { notified = append(notified, def.ID) },
	)

	awarded, err := engine.EvaluateAndAward("user_engine_1")
	require.NoError(t, err)
	require.Len(t, awarded, 2)
	assert.Equal(t, "streak-3", awarded[0].ID)
	assert.Equal(t, "variety-5", awarded[1].ID)

	// Notification fires once per award, after the record exists
	assert.Equal(t, []string{"streak-3", "variety-5"}, notified)
	assert.Equal(t, int64(2), dbCount(t, "user_engine_1"))
}

func dbCount(t *testing.T, userID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(&models.UserAchievement{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func TestEvaluateAndAward_SecondRunAwardsNothing(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	stats := WorkoutStats{CurrentStreakDays: 3}
	notifications := 0
	engine := NewEngine(catalog,
		func(userID string) (WorkoutStats, error) { return stats, nil },
		func(userID string, def Definition) { notifications++ },
	)

	first, err := engine.EvaluateAndAward("user_engine_2")
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := engine.EvaluateAndAward("user_engine_2")
	require.NoError(t, err)
	assert.Empty(t, second)

	assert.Equal(t, 1, notifications)
	assert.Equal(t, int64(1), dbCount(t, "user_engine_2"))
}

func TestEvaluateAndAward_GrowingStatsUnlockMore(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	stats := WorkoutStats{CurrentStreakDays: 3}
	engine := NewEngine(catalog,
		func(userID string) (WorkoutStats, error) { return stats, nil },
		nil,
	)

	first, err := engine.EvaluateAndAward("user_engine_3")
	require.NoError(t, err)
	assert.Len(t, first, 1)

	stats.CurrentStreakDays = 7
	second, err := engine.EvaluateAndAward("user_engine_3")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "streak-7", second[0].ID)
}

func TestEvaluateAndAward_RequiresUser(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	engine := NewEngine(catalog,
		func(userID string) (WorkoutStats, error) { return WorkoutStats{}, nil },
		nil,
	)

	_, err := engine.EvaluateAndAward("")
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
}

func TestEngineTotalPoints(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	engine := NewEngine(catalog,
		func(userID string) (WorkoutStats, error) {
			return WorkoutStats{CurrentStreakDays: 3, TotalDurationSeconds: 3600}, nil
		},
		nil,
	)

	_, err := engine.EvaluateAndAward("user_engine_4")
	require.NoError(t, err)

	// streak-3 (50) + duration-60 (50)
	total, err := engine.TotalPoints("user_engine_4")
	require.NoError(t, err)
	assert.Equal(t, 100, total)
}

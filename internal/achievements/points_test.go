package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPoints_SumsEarnedRewards(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	_, err := Award("user_points_1", "streak-3", time.Now()) // 50 pts
	require.NoError(t, err)
	_, err = Award("user_points_1", "duration-60", time.Now()) // 50 pts
	require.NoError(t, err)

	total, err := TotalPoints(catalog, "user_points_1")
	require.NoError(t, err)
	assert.Equal(t, 100, total)
}

func TestTotalPoints_NoAwards(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	total, err := TotalPoints(catalog, "user_points_2")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestTotalPoints_RetiredAchievementCountsZero(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	_, err := Award("user_points_3", "streak-3", time.Now()) // 50 pts
	require.NoError(t, err)
	_, err = Award("user_points_3", "retired-2019", time.Now()) // Not in catalog
	require.NoError(t, err)

	total, err := TotalPoints(catalog, "user_points_3")
	require.NoError(t, err)
	assert.Equal(t, 50, total)
}

func TestTotalPoints_DuplicateAwardDoesNotDoubleCount(t *testing.T) {
	setupTestDB(t)
	catalog := testCatalog(t)

	_, err := Award("user_points_4", "streak-3", time.Now())
	require.NoError(t, err)
	before, err := TotalPoints(catalog, "user_points_4")
	require.NoError(t, err)

	Award("user_points_4", "streak-3", time.Now())
	after, err := TotalPoints(catalog, "user_points_4")
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

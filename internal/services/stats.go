package services

import (
	"time"

	"github.com/chans00n/myfc-app-sub001/internal/achievements"
	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/pkg/errors"
)

// ComputeWorkoutStats aggregates a user's workout rows into the snapshot the
// achievement engine evaluates against.
func ComputeWorkoutStats(userID string) (achievements.WorkoutStats, error) {
	var workouts []models.Workout
	err := database.DB.
		Select("duration", "difficulty", "exercises", "performed_at").
		Where("user_id = ?", userID).
		Find(&workouts).Error
	if err != nil {
		return achievements.WorkoutStats{}, errors.StorageError(err)
	}

	return statsFromWorkouts(workouts, time.Now()), nil
}

func statsFromWorkouts(workouts []models.Workout, now time.Time) achievements.WorkoutStats {
	stats := achievements.WorkoutStats{TotalWorkouts: len(workouts)}

	uniqueExercises := make(map[string]bool)
	workoutDays := make(map[string]bool)

	for _, w := range workouts {
		stats.TotalDurationSeconds += w.Duration
		if w.Difficulty == models.DifficultyAdvanced {
			stats.AdvancedCompletions++
		}
		for _, ex := range w.Exercises {
			uniqueExercises[ex] = true
		}
		workoutDays[dayKey(w.PerformedAt)] = true
	}

	stats.UniqueExercises = len(uniqueExercises)
	stats.CurrentStreakDays = currentStreak(workoutDays, now)
	return stats
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// currentStreak counts consecutive workout days backwards from today. A
// streak that ended yesterday still counts (today's workout may not have
// happened yet); anything older has reset to 0.
func currentStreak(days map[string]bool, now time.Time) int {
	cursor := now
	if !days[dayKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !days[dayKey(cursor)] {
			return 0
		}
	}

	streak := 0
	for days[dayKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

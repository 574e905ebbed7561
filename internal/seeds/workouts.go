package seeds

import (
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
)

// SeedWorkouts gives the demo user a week of history: enough to qualify for
// the entry-level streak, duration, and variety achievements.
func SeedWorkouts(userID string) {
	log.Println("Seeding demo workouts...")

	var existing int64
	database.DB.Model(&models.Workout{}).Where("user_id = ?", userID).Count(&existing)
	if existing > 0 {
		log.Printf("   Demo user already has %d workouts, skipping", existing)
		return
	}

	plans := []struct {
		name       string
		difficulty models.Difficulty
		duration   int
		exercises  []string
		daysAgo    int
	}{
		{"Morning Run", models.DifficultyBeginner, 1800, []string{"running"}, 6},
		{"Upper Body", models.DifficultyIntermediate, 2400, []string{"bench-press", "pull-up", "shoulder-press"}, 5},
		{"Leg Day", models.DifficultyIntermediate, 2700, []string{"squat", "lunge", "leg-press"}, 4},
		{"HIIT Circuit", models.DifficultyAdvanced, 1200, []string{"burpee", "mountain-climber", "jump-rope"}, 3},
		{"Core & Mobility", models.DifficultyBeginner, 1500, []string{"plank", "russian-twist"}, 2},
		{"Long Ride", models.DifficultyIntermediate, 3600, []string{"cycling"}, 1},
		{"Full Body", models.DifficultyAdvanced, 2400, []string{"deadlift", "squat", "bench-press"}, 0},
	}

	for _, p := range plans {
		workout := models.Workout{
			UserID:      userID,
			Name:        p.name,
			Difficulty:  p.difficulty,
			Duration:    p.duration,
			Exercises:   pq.StringArray(p.exercises),
			PerformedAt: time.Now().AddDate(0, 0, -p.daysAgo),
		}
		if err := database.DB.Create(&workout).Error; err != nil {
			log.Printf("   Failed to create workout %s: %v", p.name, err)
		} else {
			log.Printf("   Workout seeded: %s", p.name)
		}
	}
}

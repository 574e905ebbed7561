package achievements

// WorkoutStats is a snapshot of a user's cumulative numbers. Every field except
// CurrentStreakDays only ever grows over a user's lifetime.
type WorkoutStats struct {
	TotalWorkouts        int `json:"totalWorkouts"`
	TotalDurationSeconds int `json:"totalDurationSeconds"`
	CurrentStreakDays    int `json:"currentStreakDays"`
	UniqueExercises      int `json:"uniqueExercises"`
	AdvancedCompletions  int `json:"advancedCompletions"`
}

// statFor selects the stat a category is measured against. Categories are
// validated at catalog construction, so the default branch is unreachable for
// catalog definitions.
func statFor(category Category, stats WorkoutStats) int {
	switch category {
	case CategoryStreak:
		return stats.CurrentStreakDays
	case CategoryDuration:
		return stats.TotalDurationSeconds
	case CategoryDifficulty:
		return stats.AdvancedCompletions
	case CategoryVariety:
		return stats.UniqueExercises
	}
	return 0
}

// Evaluate returns the definitions newly qualified by stats, in catalog order.
// Pure: no I/O, deterministic, and repeated calls with the same inputs return
// the same result.
func (c *Catalog) Evaluate(stats WorkoutStats, earned map[string]bool) []Definition {
	var qualified []Definition
	for _, def := range c.defs {
		if earned[def.ID] {
			continue
		}
		if statFor(def.Category, stats) >= def.Requirement {
			qualified = append(qualified, def)
		}
	}
	return qualified
}

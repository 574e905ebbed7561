package achievements

import "fmt"

type Category string

const (
	CategoryStreak     Category = "STREAK"
	CategoryDuration   Category = "DURATION"
	CategoryDifficulty Category = "DIFFICULTY"
	CategoryVariety    Category = "VARIETY"
)

// Definition is one immutable catalog entry. Requirement is compared against
// the stat selected by Category.
type Definition struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Category     Category `json:"category"`
	Requirement  int      `json:"requirement"`
	RewardPoints int      `json:"rewardPoints"`
}

// Catalog is the ordered, process-wide set of achievement definitions. It is
// built once at startup and never mutated, so it needs no locking.
type Catalog struct {
	defs []Definition
	byID map[string]Definition
}

// NewCatalog validates defs and preserves their order. Any malformed entry is
// a configuration error: the process should refuse to boot rather than fail
// per-evaluation later.
func NewCatalog(defs []Definition) (*Catalog, error) {
	byID := make(map[string]Definition, len(defs))
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("achievement catalog: definition %q has empty id", d.Name)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("achievement catalog: duplicate id %q", d.ID)
		}
		switch d.Category {
		case CategoryStreak, CategoryDuration, CategoryDifficulty, CategoryVariety:
		default:
			return nil, fmt.Errorf("achievement catalog: %q has unknown category %q", d.ID, d.Category)
		}
		if d.Requirement < 1 {
			return nil, fmt.Errorf("achievement catalog: %q has requirement %d, must be >= 1", d.ID, d.Requirement)
		}
		if d.RewardPoints < 0 {
			return nil, fmt.Errorf("achievement catalog: %q has negative reward points", d.ID)
		}
		byID[d.ID] = d
	}

	c := &Catalog{
		defs: make([]Definition, len(defs)),
		byID: byID,
	}
	copy(c.defs, defs)
	return c, nil
}

// All returns the definitions in insertion order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []Definition {
	return c.defs
}

// Find returns the definition for id.
func (c *Catalog) Find(id string) (Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// DefaultDefinitions is the production catalog: categories grouped, ascending
// thresholds within each group. Display order depends on this.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			ID:           "streak-3",
			Name:         "On a Roll",
			Description:  "Worked out 3 days in a row.",
			Icon:         "flame",
			Category:     CategoryStreak,
			Requirement:  3,
			RewardPoints: 50,
		},
		{
			ID:           "streak-7",
			Name:         "Week Warrior",
			Description:  "Worked out 7 days in a row.",
			Icon:         "calendar-check",
			Category:     CategoryStreak,
			Requirement:  7,
			RewardPoints: 100,
		},
		{
			ID:           "streak-30",
			Name:         "Habit Forged",
			Description:  "A full month of daily workouts.",
			Icon:         "crown",
			Category:     CategoryStreak,
			Requirement:  30,
			RewardPoints: 500,
		},
		{
			ID:           "duration-60",
			Name:         "First Hour",
			Description:  "Logged 60 minutes of total training time.",
			Icon:         "clock",
			Category:     CategoryDuration,
			Requirement:  3600,
			RewardPoints: 50,
		},
		{
			ID:           "duration-600",
			Name:         "Ten Hours Deep",
			Description:  "Logged 10 hours of total training time.",
			Icon:         "hourglass",
			Category:     CategoryDuration,
			Requirement:  36000,
			RewardPoints: 150,
		},
		{
			ID:           "duration-3000",
			Name:         "Time Invested",
			Description:  "Logged 50 hours of total training time.",
			Icon:         "trophy",
			Category:     CategoryDuration,
			Requirement:  180000,
			RewardPoints: 400,
		},
		{
			ID:           "difficulty-1",
			Name:         "Leveling Up",
			Description:  "Completed your first advanced workout.",
			Icon:         "zap",
			Category:     CategoryDifficulty,
			Requirement:  1,
			RewardPoints: 75,
		},
		{
			ID:           "difficulty-10",
			Name:         "Advanced Athlete",
			Description:  "Completed 10 advanced workouts.",
			Icon:         "dumbbell",
			Category:     CategoryDifficulty,
			Requirement:  10,
			RewardPoints: 250,
		},
		{
			ID:           "variety-5",
			Name:         "Mixing It Up",
			Description:  "Tried 5 different exercises.",
			Icon:         "shuffle",
			Category:     CategoryVariety,
			Requirement:  5,
			RewardPoints: 50,
		},
		{
			ID:           "variety-20",
			Name:         "Explorer",
			Description:  "Tried 20 different exercises.",
			Icon:         "compass",
			Category:     CategoryVariety,
			Requirement:  20,
			RewardPoints: 200,
		},
	}
}

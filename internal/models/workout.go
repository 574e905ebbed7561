package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// Workout is one completed session. The achievement engine never reads these
// rows directly; services.ComputeWorkoutStats aggregates them.
type Workout struct {
	ID          string         `gorm:"primaryKey;type:text" json:"id"`
	UserID      string         `gorm:"index;type:text;not null" json:"userId"`
	Name        string         `json:"name"`
	Difficulty  Difficulty     `gorm:"type:text;default:'BEGINNER'" json:"difficulty"`
	Duration    int            `json:"duration"` // Seconds
	Exercises   pq.StringArray `gorm:"type:text[]" json:"exercises"`
	PerformedAt time.Time      `gorm:"index" json:"performedAt"`
	CreatedAt   time.Time      `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.PerformedAt.IsZero() {
		w.PerformedAt = time.Now()
	}
	return
}

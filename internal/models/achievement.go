package models

import "time"

// UserAchievement records that a user earned an achievement. The composite
// primary key is what makes awarding at-most-once: a second insert for the
// same pair conflicts instead of creating a row.
type UserAchievement struct {
	UserID        string    `gorm:"primaryKey;type:text" json:"userId"`
	AchievementID string    `gorm:"primaryKey;type:text" json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Image    string `json:"image"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Bio      string `json:"bio"`

	Role Role `gorm:"type:text;default:'USER'" json:"role"`

	OnboardingCompleted bool `gorm:"default:false" json:"onboardingCompleted"`

	Password string `json:"-"`
}

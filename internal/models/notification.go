package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeAchievement    NotificationType = "ACHIEVEMENT"
	NotificationTypeFriendRequest  NotificationType = "FRIEND_REQUEST"
	NotificationTypeFriendActivity NotificationType = "FRIEND_ACTIVITY"
	NotificationTypeStreak         NotificationType = "STREAK"
	NotificationTypeMilestone      NotificationType = "MILESTONE"
)

type Notification struct {
	ID        string                 `gorm:"primaryKey;type:text" json:"id"`
	UserID    string                 `gorm:"index;type:text;not null" json:"userId"`
	Type      NotificationType       `gorm:"type:varchar(20);not null" json:"type"`
	Title     string                 `gorm:"type:text" json:"title"`
	Message   string                 `gorm:"type:text" json:"message"`
	Data      map[string]interface{} `gorm:"serializer:json" json:"data,omitempty"`
	IsRead    bool                   `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time              `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	return
}

// NotificationPreferences gates notification creation per category. The row is
// materialized lazily on first read; every flag defaults to true.
type NotificationPreferences struct {
	UserID         string    `gorm:"primaryKey;type:text" json:"userId"`
	Achievement    bool      `gorm:"default:true" json:"achievementNotifications"`
	FriendRequest  bool      `gorm:"default:true" json:"friendRequestNotifications"`
	FriendActivity bool      `gorm:"default:true" json:"friendActivityNotifications"`
	Streak         bool      `gorm:"default:true" json:"streakNotifications"`
	Milestone      bool      `gorm:"default:true" json:"milestoneNotifications"`
	UpdatedAt      time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Allows reports whether the given notification type is enabled.
func (p NotificationPreferences) Allows(t NotificationType) bool {
	switch t {
	case NotificationTypeAchievement:
		return p.Achievement
	case NotificationTypeFriendRequest:
		return p.FriendRequest
	case NotificationTypeFriendActivity:
		return p.FriendActivity
	case NotificationTypeStreak:
		return p.Streak
	case NotificationTypeMilestone:
		return p.Milestone
	}
	return false
}

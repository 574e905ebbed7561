package notifications

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"

	apperrors "github.com/chans00n/myfc-app-sub001/pkg/errors"
)

func defaultPreferences(userID string) models.NotificationPreferences {
	return models.NotificationPreferences{
		UserID:         userID,
		Achievement:    true,
		FriendRequest:  true,
		FriendActivity: true,
		Streak:         true,
		Milestone:      true,
	}
}

// GetPreferences returns the user's notification preferences, materializing
// the all-true default row on first read. A missing row is not an error; a
// failing read is, and callers must not fall back to defaults on it.
func GetPreferences(userID string) (models.NotificationPreferences, error) {
	if userID == "" {
		return models.NotificationPreferences{}, apperrors.ErrAuthenticationRequired
	}

	var prefs models.NotificationPreferences
	err := database.DB.First(&prefs, "user_id = ?", userID).Error
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NotificationPreferences{}, apperrors.StorageError(err)
	}

	prefs = defaultPreferences(userID)
	res := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&prefs)
	if res.Error != nil {
		return models.NotificationPreferences{}, apperrors.StorageError(res.Error)
	}
	return prefs, nil
}

// PreferencesUpdate is a partial update; nil fields keep their current value.
type PreferencesUpdate struct {
	Achievement    *bool `json:"achievementNotifications"`
	FriendRequest  *bool `json:"friendRequestNotifications"`
	FriendActivity *bool `json:"friendActivityNotifications"`
	Streak         *bool `json:"streakNotifications"`
	Milestone      *bool `json:"milestoneNotifications"`
}

// UpdatePreferences applies a partial update and publishes the full updated
// object to the sync bus so live subscribers converge.
func UpdatePreferences(userID string, update PreferencesUpdate) (models.NotificationPreferences, error) {
	prefs, err := GetPreferences(userID)
	if err != nil {
		return models.NotificationPreferences{}, err
	}

	if update.Achievement != nil {
		prefs.Achievement = *update.Achievement
	}
	if update.FriendRequest != nil {
		prefs.FriendRequest = *update.FriendRequest
	}
	if update.FriendActivity != nil {
		prefs.FriendActivity = *update.FriendActivity
	}
	if update.Streak != nil {
		prefs.Streak = *update.Streak
	}
	if update.Milestone != nil {
		prefs.Milestone = *update.Milestone
	}

	if err := database.DB.Save(&prefs).Error; err != nil {
		return models.NotificationPreferences{}, apperrors.StorageError(err)
	}

	if err := bus.Publish(prefs); err != nil {
		// The row is the source of truth; a failed fan-out only delays
		// convergence for live subscribers.
		logger.Warn().Err(err).Str("user_id", userID).Msg("Failed to publish preference change")
	}

	return prefs, nil
}

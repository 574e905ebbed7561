package notifications

import (
	"fmt"

	"github.com/chans00n/myfc-app-sub001/internal/achievements"
	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"

	apperrors "github.com/chans00n/myfc-app-sub001/pkg/errors"
)

// Push delivers a stored notification to a connected client. Wired to the
// socket hub at startup; nil outside the server process.
var Push func(userID string, notification models.Notification)

// Dispatch persists a notification for userID unless the user has disabled
// the category. Preferences are read here, at dispatch time, never cached:
// a user may flip a flag between the triggering event and this call.
// suppressed=true with a nil error is the normal gated outcome.
func Dispatch(userID string, typ models.NotificationType, title, message string, data map[string]interface{}) (*models.Notification, bool, error) {
	prefs, err := GetPreferences(userID)
	if err != nil {
		return nil, false, err
	}

	if !prefs.Allows(typ) {
		return nil, true, nil
	}

	notification := models.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		Data:    data,
	}

	if err := database.DB.Create(&notification).Error; err != nil {
		return nil, false, apperrors.StorageError(err)
	}

	if Push != nil {
		Push(userID, notification)
	}

	return &notification, false, nil
}

// AchievementEarned dispatches the notification for a newly awarded
// achievement. Best-effort: failures are logged and never propagate into the
// award flow that triggered them.
func AchievementEarned(userID string, def achievements.Definition) {
	data := map[string]interface{}{
		"achievementId": def.ID,
		"rewardPoints":  def.RewardPoints,
	}
	message := fmt.Sprintf("%s: %s (+%d pts)", def.Name, def.Description, def.RewardPoints)

	_, suppressed, err := Dispatch(userID, models.NotificationTypeAchievement, "Achievement Unlocked", message, data)
	if err != nil {
		logger.Error().Err(err).
			Str("user_id", userID).
			Str("achievement_id", def.ID).
			Msg("Failed to dispatch achievement notification")
		return
	}
	if suppressed {
		logger.Debug().
			Str("user_id", userID).
			Str("achievement_id", def.ID).
			Msg("Achievement notification suppressed by preferences")
	}
}

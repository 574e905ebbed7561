package achievements

import (
	"time"

	"gorm.io/gorm/clause"

	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/pkg/errors"
)

// Award durably records that userID earned achievementID. At-most-once per
// pair: the insert is ON CONFLICT DO NOTHING against the composite primary
// key, so two racing evaluations cannot both create a row. The loser gets
// ErrAlreadyAwarded along with the winner's record.
func Award(userID, achievementID string, at time.Time) (models.UserAchievement, error) {
	record := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      at,
	}

	res := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if res.Error != nil {
		return models.UserAchievement{}, errors.StorageError(res.Error)
	}

	if res.RowsAffected == 0 {
		// Lost the race or re-evaluated: surface the existing record.
		var existing models.UserAchievement
		err := database.DB.First(&existing, "user_id = ? AND achievement_id = ?", userID, achievementID).Error
		if err != nil {
			return models.UserAchievement{}, errors.StorageError(err)
		}
		return existing, errors.ErrAlreadyAwarded
	}

	return record, nil
}

// EarnedIDs returns the set of achievement ids the user holds.
func EarnedIDs(userID string) (map[string]bool, error) {
	var ids []string
	err := database.DB.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error
	if err != nil {
		return nil, errors.StorageError(err)
	}

	earned := make(map[string]bool, len(ids))
	for _, id := range ids {
		earned[id] = true
	}
	return earned, nil
}

// ListEarned returns the user's awards, oldest first.
func ListEarned(userID string) ([]models.UserAchievement, error) {
	var records []models.UserAchievement
	err := database.DB.
		Where("user_id = ?", userID).
		Order("earned_at asc").
		Find(&records).Error
	if err != nil {
		return nil, errors.StorageError(err)
	}
	return records, nil
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chans00n/myfc-app-sub001/internal/achievements"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"

	apperrors "github.com/chans00n/myfc-app-sub001/pkg/errors"
)

var engine *achievements.Engine

// InitEngine wires the achievement engine into the HTTP layer. Called once at
// startup after the catalog is built.
func InitEngine(e *achievements.Engine) {
	engine = e
}

type achievementView struct {
	achievements.Definition
	Earned   bool   `json:"earned"`
	EarnedAt string `json:"earnedAt,omitempty"`
}

// GetAchievements GET /achievements
// Returns the full catalog in display order with earned markers and the
// user's total points.
func GetAchievements(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := achievements.ListEarned(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	earnedAt := make(map[string]string, len(records))
	for _, r := range records {
		earnedAt[r.AchievementID] = r.EarnedAt.Format("2006-01-02T15:04:05Z07:00")
	}

	views := make([]achievementView, 0, len(engine.Catalog.All()))
	for _, def := range engine.Catalog.All() {
		v := achievementView{Definition: def}
		if at, ok := earnedAt[def.ID]; ok {
			v.Earned = true
			v.EarnedAt = at
		}
		views = append(views, v)
	}

	points, err := engine.TotalPoints(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute points"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements": views,
		"totalPoints":  points,
	})
}

// EvaluateAchievements POST /achievements/evaluate
// Re-runs evaluation against current stats and awards anything newly
// qualified.
func EvaluateAchievements(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	newlyEarned, err := engine.EvaluateAndAward(userID.(string))
	if err != nil {
		if errors.Is(err, apperrors.ErrStorage) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage temporarily unavailable, please retry"})
			return
		}
		logger.Error().Err(err).Msg("Achievement evaluation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate achievements"})
		return
	}

	if newlyEarned == nil {
		newlyEarned = []achievements.Definition{}
	}
	c.JSON(http.StatusOK, gin.H{"newAchievements": newlyEarned})
}

// GetTotalPoints GET /achievements/points
func GetTotalPoints(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	points, err := engine.TotalPoints(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute points"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalPoints": points})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chans00n/myfc-app-sub001/internal/achievements"
	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"
)

type createWorkoutRequest struct {
	Name        string     `json:"name" binding:"required"`
	Difficulty  string     `json:"difficulty"`
	Duration    int        `json:"duration" binding:"required,min=1"` // Seconds
	Exercises   []string   `json:"exercises"`
	PerformedAt *time.Time `json:"performedAt"`
}

// CreateWorkout POST /workouts
// Logs a completed session, then re-evaluates achievements. Awarding and
// notifying are best-effort side effects: they never fail the workout log.
func CreateWorkout(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	difficulty := models.Difficulty(req.Difficulty)
	switch difficulty {
	case "":
		difficulty = models.DifficultyBeginner
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid difficulty"})
		return
	}

	workout := models.Workout{
		UserID:     userID.(string),
		Name:       req.Name,
		Difficulty: difficulty,
		Duration:   req.Duration,
		Exercises:  req.Exercises,
	}
	if req.PerformedAt != nil {
		workout.PerformedAt = *req.PerformedAt
	}

	if err := database.DB.Create(&workout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save workout"})
		return
	}

	newlyEarned, err := engine.EvaluateAndAward(userID.(string))
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID.(string)).Msg("Post-workout achievement evaluation failed")
	}
	if newlyEarned == nil {
		newlyEarned = []achievements.Definition{}
	}

	c.JSON(http.StatusCreated, gin.H{
		"workout":         workout,
		"newAchievements": newlyEarned,
	})
}

// ListWorkouts GET /workouts
func ListWorkouts(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var workouts []models.Workout
	if err := database.DB.Where("user_id = ?", userID).Order("performed_at desc").Limit(100).Find(&workouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workouts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

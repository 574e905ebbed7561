package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chans00n/myfc-app-sub001/internal/handlers"
	"github.com/chans00n/myfc-app-sub001/internal/middleware"
)

func RegisterWorkoutRoutes(r gin.IRouter) {
	workouts := r.Group("/workouts")
	workouts.Use(middleware.AuthMiddleware())
	{
		workouts.GET("", handlers.ListWorkouts)
		workouts.POST("", middleware.WorkoutRateLimit(), handlers.CreateWorkout)
	}
}

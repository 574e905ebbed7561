package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chans00n/myfc-app-sub001/internal/handlers"
	"github.com/chans00n/myfc-app-sub001/internal/middleware"
)

func RegisterAchievementRoutes(r gin.IRouter) {
	achievements := r.Group("/achievements")
	achievements.Use(middleware.AuthMiddleware())
	{
		achievements.GET("", handlers.GetAchievements)
		achievements.GET("/points", handlers.GetTotalPoints)
		achievements.POST("/evaluate", handlers.EvaluateAchievements)
	}
}

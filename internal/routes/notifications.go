package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chans00n/myfc-app-sub001/internal/handlers"
	"github.com/chans00n/myfc-app-sub001/internal/middleware"
)

func RegisterNotificationRoutes(r gin.IRouter) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", handlers.GetNotifications)
		notifications.GET("/unread-count", handlers.GetUnreadCount)
		notifications.PUT("/:id/read", handlers.MarkNotificationRead)
		notifications.PUT("/read-all", handlers.MarkAllNotificationsRead)
		notifications.GET("/preferences", handlers.GetNotificationPreferences)
		notifications.PUT("/preferences", handlers.UpdateNotificationPreferences)
	}
}

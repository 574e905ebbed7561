package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/models"
)

func createTestNotification(t *testing.T, userID string, isRead bool) models.Notification {
	t.Helper()
	notification := models.Notification{
		UserID:  userID,
		Type:    models.NotificationTypeAchievement,
		Title:   "Achievement Unlocked!",
		Message: "Test notification",
		IsRead:  isRead,
	}
	require.NoError(t, database.DB.Create(&notification).Error)
	return notification
}

func TestGetNotifications(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)
	createTestUser(t, "nh_user1")
	createTestNotification(t, "nh_user1", false)
	createTestNotification(t, "nh_user1", true)

	w, c := getRequest("nh_user1", "/api/notifications")
	GetNotifications(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Notifications []models.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Notifications, 2)
}

func TestGetUnreadCount(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)
	createTestUser(t, "nh_user2")
	createTestNotification(t, "nh_user2", false)
	createTestNotification(t, "nh_user2", false)
	createTestNotification(t, "nh_user2", true)

	w, c := getRequest("nh_user2", "/api/notifications/unread-count")
	GetUnreadCount(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(2), response.Count)
}

func TestMarkNotificationRead(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)
	createTestUser(t, "nh_user3")
	notification := createTestNotification(t, "nh_user3", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/api/notifications/"+notification.ID+"/read", nil)
	c.Set("userId", "nh_user3")
	c.Params = gin.Params{{Key: "id", Value: notification.ID}}

	MarkNotificationRead(c)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Notification
	require.NoError(t, database.DB.First(&updated, "id = ?", notification.ID).Error)
	assert.True(t, updated.IsRead)
}

func TestMarkNotificationRead_OtherUserForbidden(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)
	createTestUser(t, "nh_user4")
	createTestUser(t, "nh_user5")
	notification := createTestNotification(t, "nh_user4", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/api/notifications/"+notification.ID+"/read", nil)
	c.Set("userId", "nh_user5")
	c.Params = gin.Params{{Key: "id", Value: notification.ID}}

	MarkNotificationRead(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)
	createTestUser(t, "nh_user6")
	createTestNotification(t, "nh_user6", false)
	createTestNotification(t, "nh_user6", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/api/notifications/read-all", nil)
	c.Set("userId", "nh_user6")

	MarkAllNotificationsRead(c)

	require.Equal(t, http.StatusOK, w.Code)

	var unread int64
	database.DB.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", "nh_user6", false).Count(&unread)
	assert.Equal(t, int64(0), unread)
}

func TestGetNotificationPreferences_DefaultsAllTrue(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)
	createTestUser(t, "nh_user7")

	w, c := getRequest("nh_user7", "/api/notifications/preferences")
	GetNotificationPreferences(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Preferences models.NotificationPreferences `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Preferences.Achievement)
	assert.True(t, response.Preferences.FriendRequest)
	assert.True(t, response.Preferences.FriendActivity)
	assert.True(t, response.Preferences.Streak)
	assert.True(t, response.Preferences.Milestone)
}

func TestUpdateNotificationPreferences_Partial(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)
	createTestUser(t, "nh_user8")

	body, _ := json.Marshal(map[string]interface{}{
		"achievementNotifications": false,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/api/notifications/preferences", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("userId", "nh_user8")

	UpdateNotificationPreferences(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Preferences models.NotificationPreferences `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Preferences.Achievement)
	assert.True(t, response.Preferences.Streak)
}

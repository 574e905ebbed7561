package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"

	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/internal/notifications"
	"github.com/chans00n/myfc-app-sub001/pkg/utils"
)

var SocketServer *socketio.Server

// Presence tracking
var (
	onlineUsers   = make(map[string]string) // userId -> socketId
	onlineUsersMu sync.RWMutex
)

// Per-socket preference subscription cancel functions
var (
	prefUnsubs   = make(map[string]func()) // socketId -> unsubscribe
	prefUnsubsMu sync.Mutex
)

// GetOnlineUsers returns list of online user IDs
func GetOnlineUsers() []string {
	onlineUsersMu.RLock()
	defer onlineUsersMu.RUnlock()

	users := make([]string, 0, len(onlineUsers))
	for userId := range onlineUsers {
		users = append(users, userId)
	}
	return users
}

// IsUserOnline checks if a user is online
func IsUserOnline(userId string) bool {
	onlineUsersMu.RLock()
	defer onlineUsersMu.RUnlock()
	_, exists := onlineUsers[userId]
	return exists
}

// SendNotificationToUser pushes a stored notification to the user's room
func SendNotificationToUser(userId string, notification models.Notification) {
	if SocketServer != nil {
		SocketServer.BroadcastToRoom("/", userId, "notification", notification)
	}
}

// SendPreferencesToUser pushes the full updated preference object to the
// user's room so open clients re-gate immediately
func SendPreferencesToUser(userId string, prefs models.NotificationPreferences) {
	if SocketServer != nil {
		SocketServer.BroadcastToRoom("/", userId, "preferences_updated", prefs)
	}
}

// BroadcastPresenceUpdate broadcasts user online/offline status to all clients
func BroadcastPresenceUpdate(userId string, isOnline bool) {
	if SocketServer != nil {
		data := map[string]interface{}{
			"userId":   userId,
			"isOnline": isOnline,
		}
		SocketServer.BroadcastToRoom("/", "presence", "presence_update", data)
	}
}

func InitSocketServer() *socketio.Server {
	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
			&polling.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
		},
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		url := s.URL()

		token := url.Query().Get("token")
		if token == "" {
			token = url.Query().Get("auth_token") // Fallback
		}

		if token == "" {
			log.Println("Socket Connection Rejected: No token provided", s.ID())
			return fmt.Errorf("authentication required")
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			log.Println("Socket Connection Rejected: Invalid token", s.ID())
			return fmt.Errorf("invalid token")
		}

		userId := claims.UserID
		log.Println("Socket authenticated:", s.ID(), "User:", userId)

		s.SetContext(userId)

		onlineUsersMu.Lock()
		onlineUsers[userId] = s.ID()
		onlineUsersMu.Unlock()

		// Personal room for notifications and preference updates
		s.Join(userId)
		s.Join("presence")

		BroadcastPresenceUpdate(userId, true)
		s.Emit("online_users", GetOnlineUsers())

		// Live preference mirror: seed fetch plus every future change.
		// Emitted only to this socket's personal room.
		unsubscribe, err := notifications.SubscribePreferences(userId, func(prefs models.NotificationPreferences) {
			SendPreferencesToUser(userId, prefs)
		})
		if err != nil {
			// The client keeps working off its last known copy; it can
			// reconnect to retry the seed.
			log.Println("Preference subscription failed for", userId, ":", err)
			return nil
		}

		prefUnsubsMu.Lock()
		prefUnsubs[s.ID()] = unsubscribe
		prefUnsubsMu.Unlock()

		return nil
	})

	server.OnEvent("/", "get_online_users", func(s socketio.Conn, msg string) {
		s.Emit("online_users", GetOnlineUsers())
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("closed", reason)

		prefUnsubsMu.Lock()
		if unsubscribe, ok := prefUnsubs[s.ID()]; ok {
			unsubscribe()
			delete(prefUnsubs, s.ID())
		}
		prefUnsubsMu.Unlock()

		onlineUsersMu.Lock()
		var disconnectedUserId string
		for userId, socketId := range onlineUsers {
			if socketId == s.ID() {
				disconnectedUserId = userId
				delete(onlineUsers, userId)
				break
			}
		}
		onlineUsersMu.Unlock()

		if disconnectedUserId != "" {
			BroadcastPresenceUpdate(disconnectedUserId, false)
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.Println("meet error:", e)
	})

	go server.Serve()
	SocketServer = server
	return server
}

// Gin Handler to wrap Socket.io
func SocketHandler(server *socketio.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.ServeHTTP(c.Writer, c.Request)
	}
}

package handler

import (
	"net/http"
	"time"

	"nearmarket/internal/notify"
	"nearmarket/services/market/helpers"
	"nearmarket/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait = 10 * time.Second
	wsPingEvery = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens via the bearer token, not the Origin header.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler streams hub events to websocket clients.
type WSHandler struct {
	chats ChatServiceInterface
	hub   *notify.Hub
}

func NewWSHandler(chats ChatServiceInterface, hub *notify.Hub) *WSHandler {
	return &WSHandler{chats: chats, hub: hub}
}

// ChatStreamHandler handles GET /ws/chats/:chat_id and pushes new-message
// events for the chat until the client disconnects.
func (h *WSHandler) ChatStreamHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	chatID := c.Param("chat_id")

	events, cancel, err := h.chats.Subscribe(chatID, userID)
	if err != nil {
		helpers.HandleServiceError(c, "ChatStreamHandler", err, map[string]any{"chat_id": chatID})
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("websocket upgrade failed", map[string]any{"chat_id": chatID, "error": err.Error()})
		return
	}

	streamEvents(conn, events)
}

// NotificationStreamHandler handles GET /ws/notifications and pushes
// user-directed events such as offer acceptances.
func (h *WSHandler) NotificationStreamHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	events, cancel := h.hub.SubscribeUser(userID)
	defer cancel()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("websocket upgrade failed", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	streamEvents(conn, events)
}

// streamEvents writes hub events as JSON frames until the subscription or
// the connection ends. A reader goroutine drains control frames so client
// closes are noticed promptly.
func streamEvents(conn *websocket.Conn, events <-chan notify.Event) {
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingEvery)
	defer ping.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}

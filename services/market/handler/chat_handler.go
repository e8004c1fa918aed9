package handler

import (
	"net/http"

	model "nearmarket/internal/models"
	"nearmarket/internal/notify"
	"nearmarket/services/market/helpers"
	"nearmarket/utils"

	"github.com/gin-gonic/gin"
)

type ChatServiceInterface interface {
	Send(chatID, senderID, content, imageURL string) (model.Message, error)
	Fetch(chatID, viewerID string) ([]model.Message, error)
	ListChats(userID string) ([]model.Chat, error)
	Subscribe(chatID, userID string) (<-chan notify.Event, func(), error)
}

type ChatHandler struct {
	service ChatServiceInterface
}

func NewChatHandler(service ChatServiceInterface) *ChatHandler {
	return &ChatHandler{service: service}
}

// ListChatsHandler handles GET /chats
func (h *ChatHandler) ListChatsHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	chats, err := h.service.ListChats(userID)
	if err != nil {
		helpers.HandleServiceError(c, "ListChatsHandler", err, map[string]any{"user_id": userID})
		return
	}

	if chats == nil {
		chats = []model.Chat{}
	}
	utils.JSONResponse(c, http.StatusOK, chats, "chats retrieved successfully")
}

// FetchMessagesHandler handles GET /chats/:chat_id/messages. Fetching as a
// participant marks the counterparty's messages read.
func (h *ChatHandler) FetchMessagesHandler(c *gin.Context) {
	viewerID := c.GetString(ContextUserID)
	chatID := c.Param("chat_id")

	msgs, err := h.service.Fetch(chatID, viewerID)
	if err != nil {
		helpers.HandleServiceError(c, "FetchMessagesHandler", err, map[string]any{"chat_id": chatID})
		return
	}

	if msgs == nil {
		msgs = []model.Message{}
	}
	utils.JSONResponse(c, http.StatusOK, msgs, "messages retrieved successfully")
	helpers.LogSuccess("FetchMessagesHandler", "messages retrieved successfully", map[string]any{
		"chat_id": chatID,
		"count":   len(msgs),
	})
}

// SendMessageHandler handles POST /chats/:chat_id/messages
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	senderID := c.GetString(ContextUserID)
	chatID := c.Param("chat_id")

	var req helpers.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SendMessageHandler", err)
		return
	}

	msg, err := h.service.Send(chatID, senderID, req.Content, req.ImageURL)
	if err != nil {
		helpers.HandleServiceError(c, "SendMessageHandler", err, map[string]any{"chat_id": chatID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, msg, "message sent successfully")
	helpers.LogSuccess("SendMessageHandler", "message sent successfully", map[string]any{
		"chat_id":    chatID,
		"message_id": msg.MessageID,
	})
}

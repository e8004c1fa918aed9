package chat

import (
	"fmt"
	"time"

	"nearmarket/internal/marketerrors"
	"nearmarket/internal/models"
	"nearmarket/internal/notify"
	"nearmarket/internal/repository"
	"nearmarket/utils"
)

// ChatService owns the append-only message log per chat and its read-state
// tracking.
type ChatService struct {
	repo repository.MarketDB
	hub  *notify.Hub
}

// NewChatService creates a new ChatService instance
func NewChatService(repo repository.MarketDB, hub *notify.Hub) *ChatService {
	return &ChatService{
		repo: repo,
		hub:  hub,
	}
}

// Send appends a message to the chat, bumps the chat's activity timestamp
// and publishes the message to live subscribers.
func (s *ChatService) Send(chatID, senderID, content, imageURL string) (models.Message, error) {
	if chatID == "" || senderID == "" {
		return models.Message{}, fmt.Errorf("service: %w - missing chatID or senderID", marketerrors.ErrValidation)
	}
	if content == "" && imageURL == "" {
		return models.Message{}, fmt.Errorf("service: %w - message needs content or an image", marketerrors.ErrValidation)
	}

	chat, err := s.chatForParticipant(chatID, senderID)
	if err != nil {
		return models.Message{}, err
	}

	now := time.Now().UTC()
	msg := models.Message{
		MessageID: utils.GenerateID(),
		ChatID:    chat.ChatID,
		SenderID:  senderID,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: now,
	}

	if err := s.repo.CreateMessage(msg); err != nil {
		return models.Message{}, fmt.Errorf("service: failed to send message in chat %s: %w", chatID, err)
	}

	// A failure here only leaves chat ordering stale, never the log itself.
	if err := s.repo.TouchChat(chat.ChatID, now); err != nil {
		utils.Warn("service: failed to bump chat activity", map[string]any{
			"chat_id": chatID,
			"error":   err.Error(),
		})
	}

	s.hub.PublishToChat(chat.ChatID, notify.Event{
		Type:      notify.EventNewMessage,
		ChatID:    chat.ChatID,
		Payload:   msg,
		CreatedAt: now,
	})

	return msg, nil
}

// Fetch returns the chat's full message log oldest-first and flips the
// read flag on every unread message not authored by the viewer. The
// returned slice reflects the post-flip state.
func (s *ChatService) Fetch(chatID, viewerID string) ([]models.Message, error) {
	if chatID == "" || viewerID == "" {
		return nil, fmt.Errorf("service: %w - missing chatID or viewerID", marketerrors.ErrValidation)
	}

	if _, err := s.chatForParticipant(chatID, viewerID); err != nil {
		return nil, err
	}

	msgs, err := s.repo.GetMessagesByChat(chatID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch messages for chat %s: %w", chatID, err)
	}

	flipped, err := s.repo.MarkMessagesRead(chatID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to mark messages read in chat %s: %w", chatID, err)
	}
	if flipped > 0 {
		utils.Debug("service: marked messages read", map[string]any{
			"chat_id": chatID,
			"count":   flipped,
		})
	}

	for i := range msgs {
		if msgs[i].SenderID != viewerID {
			msgs[i].IsRead = true
		}
	}
	return msgs, nil
}

// ListChats returns every chat the user participates in, most recently
// active first
func (s *ChatService) ListChats(userID string) ([]models.Chat, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrValidation)
	}

	chats, err := s.repo.GetChatsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list chats for user %s: %w", userID, err)
	}
	return chats, nil
}

// Subscribe opens a live event stream for the chat after checking the
// subscriber participates in it.
func (s *ChatService) Subscribe(chatID, userID string) (<-chan notify.Event, func(), error) {
	if _, err := s.chatForParticipant(chatID, userID); err != nil {
		return nil, nil, err
	}
	ch, cancel := s.hub.SubscribeChat(chatID)
	return ch, cancel, nil
}

// chatForParticipant loads the chat and verifies the user is one of its two
// parties.
func (s *ChatService) chatForParticipant(chatID, userID string) (models.Chat, error) {
	chat, err := s.repo.GetChatByID(chatID)
	if err != nil {
		return models.Chat{}, fmt.Errorf("service: failed to load chat %s: %w", chatID, err)
	}
	if chat.BuyerID != userID && chat.SellerID != userID {
		return models.Chat{}, fmt.Errorf("service: user %s in chat %s: %w", userID, chatID, marketerrors.ErrChatForbidden)
	}
	return chat, nil
}

package chat

import (
	"errors"
	"testing"
	"time"

	"nearmarket/internal/marketerrors"
	model "nearmarket/internal/models"
	"nearmarket/internal/notify"
	"nearmarket/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func chatFixture() model.Chat {
	return model.Chat{
		ChatID:    "chat1",
		ListingID: "listing1",
		BuyerID:   "buyer1",
		SellerID:  "seller1",
		IsActive:  true,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
}

// Tests Send
func TestChatService_Send(t *testing.T) {
	tests := []struct {
		name          string
		chatID        string
		senderID      string
		content       string
		imageURL      string
		mockSetup     func(m *repository.MockMarketDB)
		expectError   bool
		expectedError error
	}{
		{
			name:     "valid_text_message",
			chatID:   "chat1",
			senderID: "buyer1",
			content:  "is this still available?",
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().GetChatByID("chat1").Return(chatFixture(), nil)
				m.EXPECT().CreateMessage(gomock.Any()).Return(nil)
				m.EXPECT().TouchChat("chat1", gomock.Any()).Return(nil)
			},
		},
		{
			name:     "image_only_message",
			chatID:   "chat1",
			senderID: "seller1",
			imageURL: "https://img/photo.jpg",
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().GetChatByID("chat1").Return(chatFixture(), nil)
				m.EXPECT().CreateMessage(gomock.Any()).Return(nil)
				m.EXPECT().TouchChat("chat1", gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_chat_id",
			chatID:        "",
			senderID:      "buyer1",
			content:       "hello",
			mockSetup:     func(m *repository.MockMarketDB) {},
			expectError:   true,
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:          "empty_body",
			chatID:        "chat1",
			senderID:      "buyer1",
			mockSetup:     func(m *repository.MockMarketDB) {},
			expectError:   true,
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:     "sender_not_participant",
			chatID:   "chat1",
			senderID: "stranger",
			content:  "let me in",
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().GetChatByID("chat1").Return(chatFixture(), nil)
			},
			expectError:   true,
			expectedError: marketerrors.ErrChatForbidden,
		},
		{
			name:     "chat_not_found",
			chatID:   "missing",
			senderID: "buyer1",
			content:  "hello",
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().GetChatByID("missing").Return(model.Chat{}, marketerrors.ErrChatNotFound)
			},
			expectError:   true,
			expectedError: marketerrors.ErrChatNotFound,
		},
		{
			name:     "touch_failure_is_swallowed",
			chatID:   "chat1",
			senderID: "buyer1",
			content:  "hello",
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().GetChatByID("chat1").Return(chatFixture(), nil)
				m.EXPECT().CreateMessage(gomock.Any()).Return(nil)
				m.EXPECT().TouchChat("chat1", gomock.Any()).Return(errors.New("touch failed"))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockMarketDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewChatService(mockRepo, notify.NewHub())

			msg, err := service.Send(tc.chatID, tc.senderID, tc.content, tc.imageURL)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, msg.MessageID)
			_, parseErr := uuid.Parse(msg.MessageID)
			require.NoError(t, parseErr, "MessageID should be a valid UUID")
			require.Equal(t, tc.chatID, msg.ChatID)
			require.Equal(t, tc.senderID, msg.SenderID)
			require.Equal(t, tc.content, msg.Content)
			require.Equal(t, tc.imageURL, msg.ImageURL)
			require.False(t, msg.IsRead)
		})
	}
}

// Tests that sending publishes a live event and keeps last_message_at fresh
func TestChatService_Send_PublishesAndTouches(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := chatFixture()

	mockRepo := repository.NewMockMarketDB(ctrl)
	mockRepo.EXPECT().GetChatByID("chat1").Return(fixture, nil)

	var createdAt, touchedAt time.Time
	mockRepo.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(m model.Message) error {
		createdAt = m.CreatedAt
		return nil
	})
	mockRepo.EXPECT().TouchChat("chat1", gomock.Any()).DoAndReturn(func(_ string, at time.Time) error {
		touchedAt = at
		return nil
	})

	hub := notify.NewHub()
	events, cancel := hub.SubscribeChat("chat1")
	defer cancel()

	service := NewChatService(mockRepo, hub)

	msg, err := service.Send("chat1", "buyer1", "hello", "")
	require.NoError(t, err)

	// The activity bump uses the message's own timestamp, so chat ordering
	// can never lag behind the log.
	require.Equal(t, createdAt, touchedAt)
	require.False(t, touchedAt.Before(fixture.CreatedAt))

	select {
	case ev := <-events:
		require.Equal(t, notify.EventNewMessage, ev.Type)
		require.Equal(t, "chat1", ev.ChatID)
		require.Equal(t, msg, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("expected a new-message event")
	}
}

// Tests Fetch read-flip scoping
func TestChatService_Fetch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	log := []model.Message{
		{MessageID: "msg1", ChatID: "chat1", SenderID: "seller1", Content: "hi", CreatedAt: now},
		{MessageID: "msg2", ChatID: "chat1", SenderID: "buyer1", Content: "hello", CreatedAt: now.Add(time.Second)},
	}

	mockRepo := repository.NewMockMarketDB(ctrl)
	mockRepo.EXPECT().GetChatByID("chat1").Return(chatFixture(), nil)
	mockRepo.EXPECT().GetMessagesByChat("chat1").Return(log, nil)
	mockRepo.EXPECT().MarkMessagesRead("chat1", "buyer1").Return(int64(1), nil)

	service := NewChatService(mockRepo, notify.NewHub())

	msgs, err := service.Fetch("chat1", "buyer1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.True(t, msgs[0].IsRead, "the counterparty's message reads as read after fetching")
	require.False(t, msgs[1].IsRead, "the viewer's own message is untouched")
}

// Tests Fetch rejects non-participants
func TestChatService_Fetch_Forbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	mockRepo.EXPECT().GetChatByID("chat1").Return(chatFixture(), nil)

	service := NewChatService(mockRepo, notify.NewHub())

	_, err := service.Fetch("chat1", "stranger")
	require.ErrorIs(t, err, marketerrors.ErrChatForbidden)
}

// Tests ListChats
func TestChatService_ListChats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	mockRepo.EXPECT().GetChatsByUser("buyer1").Return([]model.Chat{chatFixture()}, nil)

	service := NewChatService(mockRepo, notify.NewHub())

	chats, err := service.ListChats("buyer1")
	require.NoError(t, err)
	require.Len(t, chats, 1)

	_, err = service.ListChats("")
	require.ErrorIs(t, err, marketerrors.ErrValidation)
}

// Tests Subscribe participant gating
func TestChatService_Subscribe(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	mockRepo.EXPECT().GetChatByID("chat1").Return(chatFixture(), nil).Times(2)

	hub := notify.NewHub()
	service := NewChatService(mockRepo, hub)

	events, cancel, err := service.Subscribe("chat1", "seller1")
	require.NoError(t, err)
	defer cancel()

	hub.PublishToChat("chat1", notify.Event{Type: notify.EventNewMessage})
	select {
	case ev := <-events:
		require.Equal(t, notify.EventNewMessage, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("expected a published event on the subscription")
	}

	_, _, err = service.Subscribe("chat1", "stranger")
	require.ErrorIs(t, err, marketerrors.ErrChatForbidden)
}

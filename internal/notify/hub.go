package notify

import (
	"sync"
	"time"

	"nearmarket/utils"
)

// EventType discriminates hub events.
type EventType string

const (
	// EventOfferAccepted is pushed to the buyer when a seller accepts their offer.
	EventOfferAccepted EventType = "offer_accepted"
	// EventNewMessage is pushed to a chat's subscribers when a message lands.
	EventNewMessage EventType = "new_message"
)

// Event is a single hub notification. Delivery is best-effort and
// in-process; the durable source of truth stays in the store.
type Event struct {
	Type      EventType `json:"type"`
	ChatID    string    `json:"chat_id,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// subscriber channels are buffered; sends never block and drop when a
// subscriber falls this far behind.
const subscriberBuffer = 16

// Hub fans events out to per-user and per-chat subscribers. All internal
// state is guarded by the RWMutex; adding/removing a subscription takes the
// write lock, publishing takes the read lock.
type Hub struct {
	mu       sync.RWMutex
	userSubs map[string]map[string]chan Event // userID -> subID -> channel
	chatSubs map[string]map[string]chan Event // chatID -> subID -> channel
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		userSubs: make(map[string]map[string]chan Event),
		chatSubs: make(map[string]map[string]chan Event),
	}
}

// SubscribeUser registers a listener for events directed at a user. The
// returned cancel func must be called to release the subscription.
func (h *Hub) SubscribeUser(userID string) (<-chan Event, func()) {
	return subscribe(h, h.userSubs, userID)
}

// SubscribeChat registers a listener for events scoped to a chat.
func (h *Hub) SubscribeChat(chatID string) (<-chan Event, func()) {
	return subscribe(h, h.chatSubs, chatID)
}

// PublishToUser delivers an event to every active subscription of a user.
// Slow subscribers are skipped rather than blocking the publisher.
func (h *Hub) PublishToUser(userID string, ev Event) {
	h.publish(h.userSubs, userID, ev)
}

// PublishToChat delivers an event to every subscriber of a chat.
func (h *Hub) PublishToChat(chatID string, ev Event) {
	h.publish(h.chatSubs, chatID, ev)
}

// ActiveSubscriptions returns the total number of open subscriptions.
func (h *Hub) ActiveSubscriptions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, subs := range h.userSubs {
		count += len(subs)
	}
	for _, subs := range h.chatSubs {
		count += len(subs)
	}
	return count
}

func subscribe(h *Hub, byKey map[string]map[string]chan Event, key string) (<-chan Event, func()) {
	subID := utils.GenerateID()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := byKey[key]; !ok {
		byKey[key] = make(map[string]chan Event)
	}
	byKey[key][subID] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(byKey[key], subID)
		if len(byKey[key]) == 0 {
			delete(byKey, key)
		}
	}
	return ch, cancel
}

func (h *Hub) publish(byKey map[string]map[string]chan Event, key string, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for subID, ch := range byKey[key] {
		select {
		case ch <- ev:
		default:
			utils.Debug("notify: dropping event for slow subscriber", map[string]any{
				"sub_id": subID,
				"type":   string(ev.Type),
			})
		}
	}
}

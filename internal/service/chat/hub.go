package chat

import (
	"sync"

	"backoffice/internal/entities"
)

const subscriberBuffer = 16

// Hub раздает сообщения подписчикам разговора. Подписчик - буферизированный
// канал; медленный подписчик теряет сообщения вместо блокировки рассылки.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int64]map[chan entities.Message]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int64]map[chan entities.Message]struct{}),
	}
}

func (h *Hub) Subscribe(conversationID int64) chan entities.Message {
	ch := make(chan entities.Message, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[conversationID] == nil {
		h.subscribers[conversationID] = make(map[chan entities.Message]struct{})
	}
	h.subscribers[conversationID][ch] = struct{}{}

	return ch
}

func (h *Hub) Unsubscribe(conversationID int64, ch chan entities.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[conversationID]
	if !ok {
		return
	}
	if _, ok := subs[ch]; !ok {
		return
	}

	delete(subs, ch)
	close(ch)
	if len(subs) == 0 {
		delete(h.subscribers, conversationID)
	}
}

func (h *Hub) Broadcast(conversationID int64, message entities.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[conversationID] {
		select {
		case ch <- message:
		default:
		}
	}
}

func (h *Hub) SubscriberCount(conversationID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[conversationID])
}

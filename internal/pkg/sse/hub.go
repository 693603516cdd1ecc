package sse

import "sync"

// Event is one server-sent event. Toasts from the save flow and the guard
// travel through here to whichever screens the user has open.
type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

// Buffered so a slow reader does not stall the publisher; overflow drops.
const subscriberBuffer = 10

// Hub fans events out to per-user subscribers.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	users  map[string]map[int]chan Event
}

func NewHub() *Hub {
	return &Hub{users: make(map[string]map[int]chan Event)}
}

// Subscribe registers a subscriber for a user and returns the event channel
// plus a cleanup function the caller must run on disconnect.
func (h *Hub) Subscribe(userID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan Event, subscriberBuffer)

	subs, ok := h.users[userID]
	if !ok {
		subs = make(map[int]chan Event)
		h.users[userID] = subs
	}
	subs[id] = ch

	return ch, func() { h.unsubscribe(userID, id) }
}

func (h *Hub) unsubscribe(userID string, id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.users[userID]
	if !ok {
		return
	}
	if ch, ok := subs[id]; ok {
		delete(subs, id)
		close(ch)
	}
	if len(subs) == 0 {
		delete(h.users, userID)
	}
}

// Publish sends an event to every subscriber of the user. A full channel
// drops the event rather than blocking.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.users[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of open streams for a user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

package events

import (
	"sync"
)

// Topic identifies a notification channel shared across UI surfaces
type Topic string

const (
	// TopicMissionExecuted fires after the executor persists a mission; payload
	// is the normalized mission.
	TopicMissionExecuted Topic = "mission.executed"

	// TopicRouteSelected fires when the current mission changes; payload is a
	// RoutePayload. Legacy alias of the old route-selection signal.
	TopicRouteSelected Topic = "route.selected"

	// TopicRouteCleared fires when the current mission is cleared; payload is nil.
	TopicRouteCleared Topic = "route.cleared"
)

// RoutePayload is the origin/destination pair carried on route topics
type RoutePayload struct {
	OriginCode      string `json:"originCode"`
	DestinationCode string `json:"destinationCode"`
}

// Handler receives notification payloads for a topic
type Handler func(payload interface{})

// Notifier is a process-wide publish/subscribe channel used so independently
// mounted surfaces (banner, panel, modal) stay consistent without shared state.
// Handlers run synchronously in registration order.
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic][]subscription
}

type subscription struct {
	id      int
	handler Handler
}

// NewNotifier creates a new notifier
func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[Topic][]subscription),
	}
}

// Subscribe registers a handler for a topic and returns an unsubscribe func.
// Unsubscribing twice is a no-op.
func (n *Notifier) Subscribe(topic Topic, handler Handler) func() {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.subs[topic] = append(n.subs[topic], subscription{id: id, handler: handler})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		subs := n.subs[topic]
		for i, s := range subs {
			if s.id == id {
				n.subs[topic] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers a payload to every handler subscribed to the topic
func (n *Notifier) Publish(topic Topic, payload interface{}) {
	n.mu.RLock()
	subs := make([]subscription, len(n.subs[topic]))
	copy(subs, n.subs[topic])
	n.mu.RUnlock()

	for _, s := range subs {
		s.handler(payload)
	}
}

// SubscriberCount returns the number of handlers registered for a topic
func (n *Notifier) SubscriberCount(topic Topic) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs[topic])
}

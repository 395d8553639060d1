package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// SubscriptionID identifies one Subscribe call so it can be undone.
// Function values are not comparable in Go, so handlers are removed by ID.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches.
// Dispatch is synchronous: Emit returns after every handler has run.
type EventManager struct {
	subscribers map[EventType][]subscription
	lastID      SubscriptionID
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) SubscriptionID {
	em.lastID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{id: em.lastID, handler: handler})
	return em.lastID
}

// Unsubscribe removes the handler registered under id
func (em *EventManager) Unsubscribe(eventType EventType, id SubscriptionID) {
	subs, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	kept := make([]subscription, 0, len(subs))
	for _, s := range subs {
		if s.id != id {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, eventType)
	} else {
		em.subscribers[eventType] = kept
	}
}

// HandlerCount returns the number of handlers subscribed to eventType
func (em *EventManager) HandlerCount(eventType EventType) int {
	return len(em.subscribers[eventType])
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	subs, exists := em.subscribers[event.Type()]
	if !exists {
		return
	}

	// copy so a handler may unsubscribe while we iterate
	snapshot := append([]subscription(nil), subs...)
	for _, s := range snapshot {
		s.handler(event)
	}
}

package systems

import (
	"fmt"

	"maze3d/ecs"
)

// MessageLog stores viewer messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddTyped adds a message with an explicit type
func (ml *MessageLog) AddTyped(message string, t MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: t})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// Subscribe writes maze events to the log
func (ml *MessageLog) Subscribe(em *ecs.EventManager) {
	em.Subscribe(EventMazeRebuilt, func(e ecs.Event) {
		ev := e.(MazeRebuiltEvent)
		ml.AddTyped(fmt.Sprintf("Rebuilt at resolution %d: %d segments, %d primitives",
			ev.Resolution, ev.Segments, ev.Primitives), MessageTypeSystem)
	})
	em.Subscribe(EventDoorChanged, func(e ecs.Event) {
		ev := e.(DoorChangedEvent)
		state := "closed"
		if ev.Open {
			state = "opened"
		}
		ml.AddTyped(fmt.Sprintf("Door at %d,%d %s", ev.Col, ev.Row, state), MessageTypeEnvironment)
	})
	em.Subscribe(EventHouseLight, func(e ecs.Event) {
		if e.(HouseLightEvent).Lit {
			ml.AddTyped("House light on", MessageTypeAlert)
		} else {
			ml.AddTyped("House light off", MessageTypeAlert)
		}
	})
	em.Subscribe(EventGhostState, func(e ecs.Event) {
		ev := e.(GhostStateEvent)
		ml.AddTyped(fmt.Sprintf("%s: %s -> %s", ev.Name, ev.From, ev.To), MessageTypeGhost)
	})
}

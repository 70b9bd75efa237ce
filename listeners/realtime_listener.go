package listeners

import (
	"futnion_server/models"
	"futnion_server/services"
)

// Broadcaster is the slice of the socket.io server the realtime listener
// needs. *socketio.Server satisfies it.
type Broadcaster interface {
	BroadcastToRoom(namespace, room, event string, args ...interface{}) bool
}

// RealtimeListener pushes match events to the socket.io room named after the
// match, so connected clients see roster changes without polling.
type RealtimeListener struct {
	server Broadcaster
}

func NewRealtimeListener(server Broadcaster) *RealtimeListener {
	return &RealtimeListener{server: server}
}

// Attach subscribes this listener to the match event kinds clients care about.
func (l *RealtimeListener) Attach(bus *services.EventBus) {
	kinds := []string{
		models.EventMatchJoined,
		models.EventMatchLeft,
		models.EventMatchFull,
		models.EventMatchUpdated,
		models.EventMatchDeleted,
		models.EventMatchDeletedByAdmin,
		models.EventParticipantRemoved,
	}
	for _, kind := range kinds {
		bus.Subscribe(kind, l.Handle)
	}
}

// Handle broadcasts one event to the match's room.
func (l *RealtimeListener) Handle(event models.Event) {
	if event.MatchID == "" {
		return
	}
	l.server.BroadcastToRoom("/", event.MatchID, event.Kind, event)
}

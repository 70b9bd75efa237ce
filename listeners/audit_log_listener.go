package listeners

import (
	"fmt"
	"log"
	"sync"

	"futnion_server/models"
	"futnion_server/services"
)

// AuditLogEntry is one structured record of something that happened.
type AuditLogEntry struct {
	Event     string `json:"event"`
	MatchID   string `json:"matchId,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Email     string `json:"email,omitempty"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// AuditLogListener appends a log entry for every event kind. Purely additive;
// nothing ever reads back into the services.
type AuditLogListener struct {
	mu   sync.Mutex
	logs []AuditLogEntry
}

func NewAuditLogListener() *AuditLogListener {
	return &AuditLogListener{}
}

// Attach subscribes this listener to every event kind on the bus.
func (l *AuditLogListener) Attach(bus *services.EventBus) {
	kinds := []string{
		models.EventUserRegistered,
		models.EventUserLoggedIn,
		models.EventUserUpdated,
		models.EventUserDeleted,
		models.EventMatchCreated,
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

// Handle records one event.
func (l *AuditLogListener) Handle(event models.Event) {
	entry := AuditLogEntry{
		Event:     event.Kind,
		MatchID:   event.MatchID,
		UserID:    event.UserID,
		Email:     event.Email,
		Timestamp: event.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		Message:   auditMessage(event),
	}

	l.mu.Lock()
	l.logs = append(l.logs, entry)
	l.mu.Unlock()

	log.Printf("📝 [AUDIT] %s", entry.Message)
}

func auditMessage(event models.Event) string {
	switch event.Kind {
	case models.EventUserRegistered:
		return fmt.Sprintf("user %s registered", event.Email)
	case models.EventUserLoggedIn:
		return fmt.Sprintf("user %s logged in", event.Email)
	case models.EventUserUpdated:
		return fmt.Sprintf("user %s updated", event.UserID)
	case models.EventUserDeleted:
		return fmt.Sprintf("user %s deleted", event.UserID)
	case models.EventMatchCreated:
		return fmt.Sprintf("match %q created by %s", event.MatchName, event.CreatorID)
	case models.EventMatchJoined:
		return fmt.Sprintf("user %s joined match %s (%d/%d)", event.UserID, event.MatchID, event.ParticipantCount, event.RequiredPlayers)
	case models.EventMatchLeft:
		return fmt.Sprintf("user %s left match %s", event.UserID, event.MatchID)
	case models.EventMatchFull:
		return fmt.Sprintf("match %s is full (%d players)", event.MatchID, event.ParticipantCount)
	case models.EventMatchUpdated:
		return fmt.Sprintf("match %s updated", event.MatchID)
	case models.EventMatchDeleted:
		return fmt.Sprintf("match %s deleted by its creator", event.MatchID)
	case models.EventMatchDeletedByAdmin:
		return fmt.Sprintf("match %s deleted by an administrator", event.MatchID)
	case models.EventParticipantRemoved:
		return fmt.Sprintf("user %s was removed from match %s", event.UserID, event.MatchID)
	default:
		return fmt.Sprintf("event %s", event.Kind)
	}
}

// GetLogs returns a copy of the recorded entries.
func (l *AuditLogListener) GetLogs() []AuditLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]AuditLogEntry, len(l.logs))
	copy(out, l.logs)
	return out
}

// ClearLogs discards all recorded entries.
func (l *AuditLogListener) ClearLogs() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = nil
}

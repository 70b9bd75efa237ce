package listeners

import (
	"fmt"
	"log"
	"sync"
	"time"

	"futnion_server/models"
	"futnion_server/services"
)

// Notification types recorded by the listener.
const (
	NotificationUserWelcome       = "USER_WELCOME"
	NotificationMatchCreated      = "MATCH_CREATED_CONFIRMATION"
	NotificationParticipantJoined = "PARTICIPANT_JOINED"
	NotificationMatchFull         = "MATCH_FULL_ALERT"
)

// Notification is an intent-to-notify record. Nothing is actually delivered;
// a real channel (email/SMS/push) would consume these.
type Notification struct {
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationListener reacts to the event kinds a user would want to hear
// about and appends intent records.
type NotificationListener struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewNotificationListener() *NotificationListener {
	return &NotificationListener{}
}

// Attach subscribes this listener to the relevant event kinds.
func (l *NotificationListener) Attach(bus *services.EventBus) {
	bus.Subscribe(models.EventUserRegistered, l.onUserRegistered)
	bus.Subscribe(models.EventMatchCreated, l.onMatchCreated)
	bus.Subscribe(models.EventMatchJoined, l.onMatchJoined)
	bus.Subscribe(models.EventMatchFull, l.onMatchFull)
}

func (l *NotificationListener) onUserRegistered(event models.Event) {
	l.append(Notification{
		Type:      NotificationUserWelcome,
		Recipient: event.Email,
		Subject:   "Welcome to Futnion",
		Body:      "You registered successfully. Time to play!",
		Timestamp: event.Timestamp,
	})
}

func (l *NotificationListener) onMatchCreated(event models.Event) {
	l.append(Notification{
		Type:      NotificationMatchCreated,
		Recipient: event.CreatorID,
		Subject:   fmt.Sprintf("Your match %q was created", event.MatchName),
		Body:      fmt.Sprintf("The match %q was created successfully.", event.MatchName),
		Timestamp: event.Timestamp,
	})
}

func (l *NotificationListener) onMatchJoined(event models.Event) {
	l.append(Notification{
		Type:      NotificationParticipantJoined,
		Recipient: event.CreatorID,
		Subject:   "Someone joined your match",
		Body:      fmt.Sprintf("%d/%d participants confirmed.", event.ParticipantCount, event.RequiredPlayers),
		Timestamp: event.Timestamp,
	})
}

func (l *NotificationListener) onMatchFull(event models.Event) {
	l.append(Notification{
		Type:      NotificationMatchFull,
		Recipient: "all_participants",
		Subject:   fmt.Sprintf("Your match %q is full!", event.MatchName),
		Body:      "Every slot is taken. Enjoy the match!",
		Timestamp: event.Timestamp,
	})
}

func (l *NotificationListener) append(n Notification) {
	l.mu.Lock()
	l.notifications = append(l.notifications, n)
	l.mu.Unlock()

	log.Printf("📧 [NOTIF] %s to %s: %s", n.Type, n.Recipient, n.Subject)
}

// GetNotifications returns a copy of the recorded intents.
func (l *NotificationListener) GetNotifications() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Notification, len(l.notifications))
	copy(out, l.notifications)
	return out
}

// CountByType counts recorded intents of one type.
func (l *NotificationListener) CountByType(notificationType string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	count := 0
	for _, n := range l.notifications {
		if n.Type == notificationType {
			count++
		}
	}
	return count
}

// ClearNotifications discards all recorded intents.
func (l *NotificationListener) ClearNotifications() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notifications = nil
}

package listeners

import (
	"testing"

	"futnion_server/models"
)

func TestNotificationListenerRecordsIntents(t *testing.T) {
	bus := newBus(t)
	notifier := NewNotificationListener()
	notifier.Attach(bus)

	bus.Publish(models.Event{Kind: models.EventUserRegistered, Email: "ada@example.com"})
	bus.Publish(models.Event{Kind: models.EventMatchCreated, MatchID: "m1", CreatorID: "u1", MatchName: "Friday"})
	bus.Publish(models.Event{Kind: models.EventMatchJoined, MatchID: "m1", UserID: "u2", CreatorID: "u1", ParticipantCount: 1, RequiredPlayers: 2})
	bus.Publish(models.Event{Kind: models.EventMatchFull, MatchID: "m1", MatchName: "Friday", ParticipantCount: 2, RequiredPlayers: 2})
	// Kinds the notifier does not care about leave no record.
	bus.Publish(models.Event{Kind: models.EventMatchLeft, MatchID: "m1", UserID: "u2"})
	bus.Drain()

	notifications := notifier.GetNotifications()
	if len(notifications) != 4 {
		t.Fatalf("notifications = %d, want 4", len(notifications))
	}

	welcome := notifications[0]
	if welcome.Type != NotificationUserWelcome {
		t.Errorf("first notification type got = %s, want %s", welcome.Type, NotificationUserWelcome)
	}
	if welcome.Recipient != "ada@example.com" {
		t.Errorf("welcome recipient got = %s, want ada@example.com", welcome.Recipient)
	}

	joined := notifications[2]
	if joined.Recipient != "u1" {
		t.Errorf("joined notification goes to %s, want the creator u1", joined.Recipient)
	}

	if got := notifier.CountByType(NotificationMatchFull); got != 1 {
		t.Errorf("CountByType(full) = %d, want 1", got)
	}
	if got := notifier.CountByType(NotificationUserWelcome); got != 1 {
		t.Errorf("CountByType(welcome) = %d, want 1", got)
	}

	notifier.ClearNotifications()
	if len(notifier.GetNotifications()) != 0 {
		t.Error("notifications survive ClearNotifications()")
	}
}

package listeners

import (
	"sync"
	"time"

	"futnion_server/models"
	"futnion_server/services"
)

// UserActivity is the per-user incremental summary.
type UserActivity struct {
	MatchesCreated int       `json:"matchesCreated"`
	MatchesJoined  int       `json:"matchesJoined"`
	LastActivity   time.Time `json:"lastActivity"`
}

// Stats is a point-in-time copy of the aggregates.
type Stats struct {
	TotalsByKind map[string]int          `json:"totalsByKind"`
	UserActivity map[string]UserActivity `json:"userActivity"`
	ActiveUsers  int                     `json:"activeUsers"`
}

// StatisticsListener maintains running counters, updated incrementally per
// event. History is never re-scanned.
type StatisticsListener struct {
	mu           sync.Mutex
	totalsByKind map[string]int
	userActivity map[string]UserActivity
}

func NewStatisticsListener() *StatisticsListener {
	return &StatisticsListener{
		totalsByKind: make(map[string]int),
		userActivity: make(map[string]UserActivity),
	}
}

// Attach subscribes this listener to every event kind it aggregates.
func (l *StatisticsListener) Attach(bus *services.EventBus) {
	kinds := []string{
		models.EventUserRegistered,
		models.EventMatchCreated,
		models.EventMatchJoined,
		models.EventMatchLeft,
		models.EventMatchFull,
		models.EventMatchDeleted,
		models.EventMatchDeletedByAdmin,
		models.EventParticipantRemoved,
	}
	for _, kind := range kinds {
		bus.Subscribe(kind, l.Handle)
	}
}

// Handle folds one event into the aggregates.
func (l *StatisticsListener) Handle(event models.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.totalsByKind[event.Kind]++

	switch event.Kind {
	case models.EventMatchCreated:
		activity := l.userActivity[event.CreatorID]
		activity.MatchesCreated++
		activity.LastActivity = event.Timestamp
		l.userActivity[event.CreatorID] = activity
	case models.EventMatchJoined:
		activity := l.userActivity[event.UserID]
		activity.MatchesJoined++
		activity.LastActivity = event.Timestamp
		l.userActivity[event.UserID] = activity
	case models.EventMatchLeft, models.EventParticipantRemoved:
		activity := l.userActivity[event.UserID]
		activity.LastActivity = event.Timestamp
		l.userActivity[event.UserID] = activity
	}
}

// GetStats returns a copy of the current aggregates.
func (l *StatisticsListener) GetStats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	totals := make(map[string]int, len(l.totalsByKind))
	for kind, total := range l.totalsByKind {
		totals[kind] = total
	}
	activity := make(map[string]UserActivity, len(l.userActivity))
	for userID, a := range l.userActivity {
		activity[userID] = a
	}

	return Stats{
		TotalsByKind: totals,
		UserActivity: activity,
		ActiveUsers:  len(activity),
	}
}

// Reset clears all aggregates.
func (l *StatisticsListener) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.totalsByKind = make(map[string]int)
	l.userActivity = make(map[string]UserActivity)
}

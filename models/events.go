package models

import "time"

// Event kinds published on the in-process event bus.
const (
	// User events
	EventUserRegistered = "user:registered"
	EventUserLoggedIn   = "user:logged_in"
	EventUserUpdated    = "user:updated"
	EventUserDeleted    = "user:deleted"

	// Match events
	EventMatchCreated        = "match:created"
	EventMatchJoined         = "match:joined"
	EventMatchLeft           = "match:left"
	EventMatchFull           = "match:full"
	EventMatchUpdated        = "match:updated"
	EventMatchDeleted        = "match:deleted"
	EventMatchDeletedByAdmin = "match:deleted_by_admin"
	EventParticipantRemoved  = "participant:removed"
)

// Event is the record of one completed state transition. It is immutable once
// published; listeners keep their own copies and never write back.
type Event struct {
	Kind             string    `json:"kind"`
	MatchID          string    `json:"matchId,omitempty"`
	UserID           string    `json:"userId,omitempty"`
	CreatorID        string    `json:"creatorId,omitempty"`
	Email            string    `json:"email,omitempty"`
	MatchName        string    `json:"matchName,omitempty"`
	ParticipantCount int       `json:"participantCount,omitempty"`
	RequiredPlayers  int       `json:"requiredPlayers,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

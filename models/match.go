package models

import "time"

// Match represents a schedulable match with a capacity and a participant roster.
type Match struct {
	MatchID         string    `dynamodbav:"matchId" json:"matchId"`                 // Unique matchId
	Name            string    `dynamodbav:"name" json:"name"`                       // Display name, e.g. "Friday 5-a-side"
	Location        string    `dynamodbav:"location" json:"location"`               // Where the match is played
	MatchDate       time.Time `dynamodbav:"matchDate" json:"matchDate"`             // Scheduled kickoff
	Duration        int       `dynamodbav:"duration" json:"duration"`               // Duration in minutes
	RequiredPlayers int       `dynamodbav:"requiredPlayers" json:"requiredPlayers"` // Capacity of the roster
	CreatorID       string    `dynamodbav:"creatorId" json:"creatorId"`             // User who created the match; never a participant
	Participants    []string  `dynamodbav:"participants" json:"participants"`       // Ordered set of user IDs
	Version         int64     `dynamodbav:"version" json:"version"`                 // Incremented on every participant write
	CreatedAt       time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// IsFull reports whether the roster has reached capacity.
func (m *Match) IsFull() bool {
	return len(m.Participants) >= m.RequiredPlayers
}

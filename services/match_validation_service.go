package services

import (
	"time"

	"futnion_server/apperrors"
	"futnion_server/models"
	"futnion_server/utils"
)

// LeaveCooldown is the pre-kickoff window during which voluntary departure is
// disallowed.
const LeaveCooldown = time.Hour

// MatchValidationService holds the business rules guarding participant
// transitions. It is stateless: every method takes the current match snapshot
// and an actor and either returns nil or a specific violation. It never
// touches storage.
type MatchValidationService struct{}

func NewMatchValidationService() *MatchValidationService {
	return &MatchValidationService{}
}

// CanJoin decides whether userID may join the match.
func (vs *MatchValidationService) CanJoin(match *models.Match, userID string) error {
	normalized := utils.NormalizeID(userID)

	if utils.NormalizeID(match.CreatorID) == normalized {
		return apperrors.New(apperrors.CodeAlreadyCreator, "you are the creator of this match")
	}

	if utils.ContainsID(match.Participants, normalized) {
		return apperrors.New(apperrors.CodeAlreadyJoined, "you already joined this match")
	}

	if match.IsFull() {
		return apperrors.New(apperrors.CodeMatchFull, "this match is already full")
	}

	return nil
}

// CanLeave decides whether userID may voluntarily leave the match. The
// cooldown compares against wall-clock time at evaluation: leaving is blocked
// once less than LeaveCooldown remains before kickoff.
func (vs *MatchValidationService) CanLeave(match *models.Match, userID string, now time.Time) error {
	if !utils.ContainsID(match.Participants, userID) {
		return apperrors.New(apperrors.CodeNotJoined, "you are not a participant of this match")
	}

	if match.MatchDate.Sub(now) < LeaveCooldown {
		return apperrors.New(apperrors.CodeCooldownActive, "you cannot leave less than one hour before kickoff")
	}

	return nil
}

// IsCreator reports whether userID created the match. Administrative deletion
// bypasses this check entirely.
func (vs *MatchValidationService) IsCreator(match *models.Match, userID string) bool {
	return utils.NormalizeID(match.CreatorID) == utils.NormalizeID(userID)
}

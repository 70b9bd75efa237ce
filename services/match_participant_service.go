package services

import (
	"context"
	"log"
	"time"

	"futnion_server/apperrors"
	"futnion_server/models"
	"futnion_server/utils"
)

// participantWriteRetries bounds the re-read-and-retry loop when a
// conditional participant write loses against a concurrent update.
const participantWriteRetries = 3

// MatchParticipantService orchestrates participant transitions: it loads the
// current snapshot, asks the validation service for a go/no-go, writes the
// full participant set conditionally on the version it read, and publishes
// the resulting events after the write succeeds.
type MatchParticipantService struct {
	Matches    MatchRepository
	Validation *MatchValidationService
	Bus        *EventBus

	// now is swappable so cooldown behavior can be pinned in tests.
	now func() time.Time
}

func NewMatchParticipantService(matches MatchRepository, validation *MatchValidationService, bus *EventBus) *MatchParticipantService {
	return &MatchParticipantService{
		Matches:    matches,
		Validation: validation,
		Bus:        bus,
		now:        time.Now,
	}
}

// Join adds userID to the match roster. On the write that fills the last
// slot it publishes match:full in addition to match:joined, exactly on the
// transition, never re-derived on later reads.
func (ps *MatchParticipantService) Join(ctx context.Context, matchID, userID string) (*models.Match, error) {
	userID = utils.NormalizeID(userID)

	var lastErr error
	for attempt := 0; attempt < participantWriteRetries; attempt++ {
		match, err := ps.Matches.FindByID(ctx, matchID)
		if err != nil {
			return nil, err
		}

		if err := ps.Validation.CanJoin(match, userID); err != nil {
			return nil, err
		}

		participants := append(append([]string{}, match.Participants...), userID)
		updated, err := ps.Matches.UpdateParticipants(ctx, match.MatchID, participants, match.Version)
		if err != nil {
			if apperrors.Is(err, apperrors.CodeConcurrentModification) {
				log.Printf("🔄 Join of %s to match %s lost a race, retrying", userID, matchID)
				lastErr = err
				continue
			}
			return nil, err
		}

		ps.Bus.Publish(models.Event{
			Kind:             models.EventMatchJoined,
			MatchID:          updated.MatchID,
			UserID:           userID,
			CreatorID:        updated.CreatorID,
			MatchName:        updated.Name,
			ParticipantCount: len(updated.Participants),
			RequiredPlayers:  updated.RequiredPlayers,
		})
		if len(updated.Participants) == updated.RequiredPlayers {
			ps.Bus.Publish(models.Event{
				Kind:             models.EventMatchFull,
				MatchID:          updated.MatchID,
				CreatorID:        updated.CreatorID,
				MatchName:        updated.Name,
				ParticipantCount: len(updated.Participants),
				RequiredPlayers:  updated.RequiredPlayers,
			})
		}
		return updated, nil
	}
	return nil, lastErr
}

// Leave removes userID from the roster after the membership and cooldown
// checks pass.
func (ps *MatchParticipantService) Leave(ctx context.Context, matchID, userID string) (*models.Match, error) {
	userID = utils.NormalizeID(userID)

	var lastErr error
	for attempt := 0; attempt < participantWriteRetries; attempt++ {
		match, err := ps.Matches.FindByID(ctx, matchID)
		if err != nil {
			return nil, err
		}

		if err := ps.Validation.CanLeave(match, userID, ps.now()); err != nil {
			return nil, err
		}

		participants := utils.RemoveID(match.Participants, userID)
		updated, err := ps.Matches.UpdateParticipants(ctx, match.MatchID, participants, match.Version)
		if err != nil {
			if apperrors.Is(err, apperrors.CodeConcurrentModification) {
				lastErr = err
				continue
			}
			return nil, err
		}

		ps.Bus.Publish(models.Event{
			Kind:             models.EventMatchLeft,
			MatchID:          updated.MatchID,
			UserID:           userID,
			CreatorID:        updated.CreatorID,
			MatchName:        updated.Name,
			ParticipantCount: len(updated.Participants),
			RequiredPlayers:  updated.RequiredPlayers,
		})
		return updated, nil
	}
	return nil, lastErr
}

// RemoveParticipant is the administrative variant of Leave: no cooldown, no
// membership validation beyond match existence. Access control is the
// caller's responsibility (admin middleware on the route).
func (ps *MatchParticipantService) RemoveParticipant(ctx context.Context, matchID, userID string) (*models.Match, error) {
	userID = utils.NormalizeID(userID)

	var lastErr error
	for attempt := 0; attempt < participantWriteRetries; attempt++ {
		match, err := ps.Matches.FindByID(ctx, matchID)
		if err != nil {
			return nil, err
		}

		if !utils.ContainsID(match.Participants, userID) {
			// Nothing to remove; removal is idempotent.
			return match, nil
		}

		participants := utils.RemoveID(match.Participants, userID)
		updated, err := ps.Matches.UpdateParticipants(ctx, match.MatchID, participants, match.Version)
		if err != nil {
			if apperrors.Is(err, apperrors.CodeConcurrentModification) {
				lastErr = err
				continue
			}
			return nil, err
		}

		ps.Bus.Publish(models.Event{
			Kind:             models.EventParticipantRemoved,
			MatchID:          updated.MatchID,
			UserID:           userID,
			CreatorID:        updated.CreatorID,
			MatchName:        updated.Name,
			ParticipantCount: len(updated.Participants),
			RequiredPlayers:  updated.RequiredPlayers,
		})
		return updated, nil
	}
	return nil, lastErr
}

// GetMyMatches returns every match the user currently participates in.
// Read-only; no event.
func (ps *MatchParticipantService) GetMyMatches(ctx context.Context, userID string) ([]models.Match, error) {
	return ps.Matches.FindByParticipant(ctx, utils.NormalizeID(userID))
}

package services

import (
	"context"
	"time"

	"futnion_server/apperrors"
	"futnion_server/models"
	"futnion_server/utils"

	"github.com/google/uuid"
)

// MatchCRUDService orchestrates the lifecycle of the match record itself.
// Participant mutations go through MatchParticipantService; Update must not
// be used to touch the roster directly.
type MatchCRUDService struct {
	Matches    MatchRepository
	Validation *MatchValidationService
	Bus        *EventBus
}

func NewMatchCRUDService(matches MatchRepository, validation *MatchValidationService, bus *EventBus) *MatchCRUDService {
	return &MatchCRUDService{Matches: matches, Validation: validation, Bus: bus}
}

// CreateMatchInput carries the caller-supplied fields for a new match.
type CreateMatchInput struct {
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	MatchDate       time.Time `json:"matchDate"`
	Duration        int       `json:"duration"`
	RequiredPlayers int       `json:"requiredPlayers"`
}

// Create persists a new match on behalf of the authenticated creator and
// publishes match:created.
func (cs *MatchCRUDService) Create(ctx context.Context, creatorID string, input CreateMatchInput) (*models.Match, error) {
	if input.Name == "" || input.RequiredPlayers <= 0 {
		return nil, apperrors.New(apperrors.CodeInvalidInput, "name and requiredPlayers are required")
	}

	match := &models.Match{
		MatchID:         uuid.NewString(),
		Name:            input.Name,
		Location:        input.Location,
		MatchDate:       input.MatchDate,
		Duration:        input.Duration,
		RequiredPlayers: input.RequiredPlayers,
		CreatorID:       utils.NormalizeID(creatorID),
		Participants:    []string{},
		Version:         0,
		CreatedAt:       time.Now(),
	}

	created, err := cs.Matches.Create(ctx, match)
	if err != nil {
		return nil, err
	}

	cs.Bus.Publish(models.Event{
		Kind:            models.EventMatchCreated,
		MatchID:         created.MatchID,
		CreatorID:       created.CreatorID,
		MatchName:       created.Name,
		RequiredPlayers: created.RequiredPlayers,
	})
	return created, nil
}

// GetAll returns every match.
func (cs *MatchCRUDService) GetAll(ctx context.Context) ([]models.Match, error) {
	return cs.Matches.FindAll(ctx)
}

// GetByID returns a single match, or NOT_FOUND.
func (cs *MatchCRUDService) GetByID(ctx context.Context, matchID string) (*models.Match, error) {
	return cs.Matches.FindByID(ctx, matchID)
}

// Update persists field changes and publishes match:updated. Participant
// fields are rejected here: the roster is only written through the
// participant service, which enforces the capacity invariants.
func (cs *MatchCRUDService) Update(ctx context.Context, matchID string, patch map[string]interface{}) (*models.Match, error) {
	for _, field := range []string{"participants", "version"} {
		if _, ok := patch[field]; ok {
			return nil, apperrors.New(apperrors.CodeInvalidInput, "participants cannot be updated through this operation")
		}
	}

	updated, err := cs.Matches.Update(ctx, matchID, patch)
	if err != nil {
		return nil, err
	}

	cs.Bus.Publish(models.Event{
		Kind:      models.EventMatchUpdated,
		MatchID:   updated.MatchID,
		CreatorID: updated.CreatorID,
		MatchName: updated.Name,
	})
	return updated, nil
}

// DeleteOwn deletes a match on behalf of its creator. Anyone else gets
// ACCESS_DENIED.
func (cs *MatchCRUDService) DeleteOwn(ctx context.Context, matchID, userID string) (*models.Match, error) {
	match, err := cs.Matches.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !cs.Validation.IsCreator(match, userID) {
		return nil, apperrors.New(apperrors.CodeAccessDenied, "only the creator can delete this match")
	}

	deleted, err := cs.Matches.Delete(ctx, matchID)
	if err != nil {
		return nil, err
	}

	cs.Bus.Publish(models.Event{
		Kind:      models.EventMatchDeleted,
		MatchID:   deleted.MatchID,
		UserID:    utils.NormalizeID(userID),
		CreatorID: deleted.CreatorID,
		MatchName: deleted.Name,
	})
	return deleted, nil
}

// DeleteAny deletes a match unconditionally. No authorization check happens
// here; the admin middleware on the route restricts access.
func (cs *MatchCRUDService) DeleteAny(ctx context.Context, matchID string) (*models.Match, error) {
	deleted, err := cs.Matches.Delete(ctx, matchID)
	if err != nil {
		return nil, err
	}

	cs.Bus.Publish(models.Event{
		Kind:      models.EventMatchDeletedByAdmin,
		MatchID:   deleted.MatchID,
		CreatorID: deleted.CreatorID,
		MatchName: deleted.Name,
	})
	return deleted, nil
}

package services

import (
	"context"

	"futnion_server/apperrors"
	"futnion_server/models"
	"futnion_server/utils"
)

// UserCRUDService handles user reads and edits. Password changes go through
// the auth service; this one refuses to touch the hash.
type UserCRUDService struct {
	Users UserRepository
	Bus   *EventBus
}

func NewUserCRUDService(users UserRepository, bus *EventBus) *UserCRUDService {
	return &UserCRUDService{Users: users, Bus: bus}
}

// GetAll returns every user. Password hashes never leave the models' JSON
// encoding, so no explicit sanitizing is needed at this layer.
func (cs *UserCRUDService) GetAll(ctx context.Context) ([]models.User, error) {
	return cs.Users.FindAll(ctx)
}

// GetByID returns one user, or NOT_FOUND.
func (cs *UserCRUDService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return cs.Users.FindByID(ctx, utils.NormalizeID(userID))
}

// Update persists profile edits and publishes user:updated.
func (cs *UserCRUDService) Update(ctx context.Context, userID string, patch map[string]interface{}) (*models.User, error) {
	for _, field := range []string{"password", "role", "userId"} {
		if _, ok := patch[field]; ok {
			return nil, apperrors.New(apperrors.CodeInvalidInput, field+" cannot be updated through this operation")
		}
	}

	updated, err := cs.Users.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	cs.Bus.Publish(models.Event{
		Kind:   models.EventUserUpdated,
		UserID: updated.UserID,
		Email:  updated.Email,
	})
	return updated, nil
}

// Delete removes a user and publishes user:deleted.
func (cs *UserCRUDService) Delete(ctx context.Context, userID string) (*models.User, error) {
	deleted, err := cs.Users.Delete(ctx, utils.NormalizeID(userID))
	if err != nil {
		return nil, err
	}

	cs.Bus.Publish(models.Event{
		Kind:   models.EventUserDeleted,
		UserID: deleted.UserID,
		Email:  deleted.Email,
	})
	return deleted, nil
}

package services

import (
	"context"
	"fmt"
	"sync"

	"futnion_server/apperrors"
	"futnion_server/models"
	"futnion_server/utils"
)

// memMatchRepo is an in-memory MatchRepository whose conditional-write
// semantics mirror the DynamoDB implementation: UpdateParticipants only
// succeeds if the stored version still matches, so the services' retry loop
// and the capacity property tests run against realistic storage.
type memMatchRepo struct {
	mu      sync.Mutex
	matches map[string]models.Match
}

func newMemMatchRepo() *memMatchRepo {
	return &memMatchRepo{matches: make(map[string]models.Match)}
}

func cloneMatch(m models.Match) *models.Match {
	out := m
	out.Participants = append([]string{}, m.Participants...)
	return &out
}

func (r *memMatchRepo) Create(_ context.Context, match *models.Match) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[match.MatchID] = *cloneMatch(*match)
	return cloneMatch(*match), nil
}

func (r *memMatchRepo) FindByID(_ context.Context, id string) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("match %s not found", id))
	}
	return cloneMatch(match), nil
}

func (r *memMatchRepo) FindAll(_ context.Context) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Match, 0, len(r.matches))
	for _, match := range r.matches {
		out = append(out, *cloneMatch(match))
	}
	return out, nil
}

func (r *memMatchRepo) FindByCreator(_ context.Context, userID string) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	normalized := utils.NormalizeID(userID)
	var out []models.Match
	for _, match := range r.matches {
		if utils.NormalizeID(match.CreatorID) == normalized {
			out = append(out, *cloneMatch(match))
		}
	}
	return out, nil
}

func (r *memMatchRepo) FindByParticipant(_ context.Context, userID string) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Match
	for _, match := range r.matches {
		if utils.ContainsID(match.Participants, userID) {
			out = append(out, *cloneMatch(match))
		}
	}
	return out, nil
}

func (r *memMatchRepo) Update(_ context.Context, id string, patch map[string]interface{}) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("match %s not found", id))
	}
	for field, value := range patch {
		switch field {
		case "name":
			match.Name, _ = value.(string)
		case "location":
			match.Location, _ = value.(string)
		case "requiredPlayers":
			if n, ok := value.(int); ok {
				match.RequiredPlayers = n
			}
		}
	}
	r.matches[id] = match
	return cloneMatch(match), nil
}

func (r *memMatchRepo) UpdateParticipants(_ context.Context, id string, participants []string, expectedVersion int64) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("match %s not found", id))
	}
	if match.Version != expectedVersion {
		return nil, apperrors.New(apperrors.CodeConcurrentModification, fmt.Sprintf("match %s was modified concurrently", id))
	}
	match.Participants = append([]string{}, participants...)
	match.Version = expectedVersion + 1
	r.matches[id] = match
	return cloneMatch(match), nil
}

func (r *memMatchRepo) Delete(_ context.Context, id string) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("match %s not found", id))
	}
	delete(r.matches, id)
	return cloneMatch(match), nil
}

// memUserRepo is an in-memory UserRepository.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = *user
	out := *user
	return &out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("user %s not found", id))
	}
	out := user
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("no user with email %s", email))
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, id string, patch map[string]interface{}) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("user %s not found", id))
	}
	for field, value := range patch {
		switch field {
		case "fullName":
			user.FullName, _ = value.(string)
		case "username":
			user.Username, _ = value.(string)
		}
	}
	r.users[id] = user
	out := user
	return &out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("user %s not found", id))
	}
	delete(r.users, id)
	out := user
	return &out, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"futnion_server/apperrors"
	"futnion_server/models"
)

func newCRUDFixture(t *testing.T) (*MatchCRUDService, *memMatchRepo, *EventBus) {
	t.Helper()
	repo := newMemMatchRepo()
	bus := NewEventBus(64)
	t.Cleanup(bus.Close)
	return NewMatchCRUDService(repo, NewMatchValidationService(), bus), repo, bus
}

func TestCreateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and publishes created", func(t *testing.T) {
		cs, _, bus := newCRUDFixture(t)
		rec := newEventRecorder(bus, models.EventMatchCreated)

		match, err := cs.Create(ctx, "Creator-1", CreateMatchInput{
			Name:            "Friday 5-a-side",
			Location:        "Riverside pitch",
			MatchDate:       time.Now().Add(72 * time.Hour),
			Duration:        90,
			RequiredPlayers: 10,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if match.MatchID == "" {
			t.Error("Create() assigned no match ID")
		}
		if match.CreatorID != "creator-1" {
			t.Errorf("creator got = %q, want canonical %q", match.CreatorID, "creator-1")
		}
		if len(match.Participants) != 0 {
			t.Errorf("new match has %d participants, want 0", len(match.Participants))
		}

		bus.Drain()
		if got := rec.countKind(models.EventMatchCreated); got != 1 {
			t.Errorf("created events = %d, want 1", got)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		cs, _, _ := newCRUDFixture(t)
		_, err := cs.Create(ctx, "u1", CreateMatchInput{Name: "", RequiredPlayers: 0})
		assertCode(t, err, apperrors.CodeInvalidInput)
	})
}

func TestGetMatch(t *testing.T) {
	ctx := context.Background()
	cs, repo, _ := newCRUDFixture(t)
	seedMatch(t, repo, &models.Match{MatchID: "m1", CreatorID: "u1", RequiredPlayers: 4})

	t.Run("by id", func(t *testing.T) {
		match, err := cs.GetByID(ctx, "m1")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if match.MatchID != "m1" {
			t.Errorf("match id got = %s, want m1", match.MatchID)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := cs.GetByID(ctx, "missing")
		assertCode(t, err, apperrors.CodeNotFound)
	})

	t.Run("all", func(t *testing.T) {
		matches, err := cs.GetAll(ctx)
		if err != nil {
			t.Fatalf("GetAll() error = %v", err)
		}
		if len(matches) != 1 {
			t.Errorf("GetAll() returned %d matches, want 1", len(matches))
		}
	})
}

func TestUpdateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("persists edits and publishes updated", func(t *testing.T) {
		cs, repo, bus := newCRUDFixture(t)
		rec := newEventRecorder(bus, models.EventMatchUpdated)
		seedMatch(t, repo, &models.Match{MatchID: "m1", CreatorID: "u1", Name: "old", RequiredPlayers: 4})

		match, err := cs.Update(ctx, "m1", map[string]interface{}{"name": "new"})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if match.Name != "new" {
			t.Errorf("name got = %q, want %q", match.Name, "new")
		}

		bus.Drain()
		if got := rec.countKind(models.EventMatchUpdated); got != 1 {
			t.Errorf("updated events = %d, want 1", got)
		}
	})

	t.Run("refuses to touch the roster", func(t *testing.T) {
		cs, repo, _ := newCRUDFixture(t)
		seedMatch(t, repo, &models.Match{MatchID: "m1", CreatorID: "u1", RequiredPlayers: 4})

		_, err := cs.Update(ctx, "m1", map[string]interface{}{"participants": []string{"x"}})
		assertCode(t, err, apperrors.CodeInvalidInput)
	})
}

func TestDeleteOwn(t *testing.T) {
	ctx := context.Background()

	t.Run("creator deletes, match is gone", func(t *testing.T) {
		cs, repo, bus := newCRUDFixture(t)
		rec := newEventRecorder(bus, models.EventMatchDeleted)
		seedMatch(t, repo, &models.Match{MatchID: "m1", CreatorID: "u1", RequiredPlayers: 4})

		if _, err := cs.DeleteOwn(ctx, "m1", "u1"); err != nil {
			t.Fatalf("DeleteOwn() error = %v", err)
		}
		_, err := cs.GetByID(ctx, "m1")
		assertCode(t, err, apperrors.CodeNotFound)

		bus.Drain()
		if got := rec.countKind(models.EventMatchDeleted); got != 1 {
			t.Errorf("deleted events = %d, want 1", got)
		}
	})

	t.Run("non-creator is denied", func(t *testing.T) {
		cs, repo, _ := newCRUDFixture(t)
		seedMatch(t, repo, &models.Match{MatchID: "m1", CreatorID: "u1", RequiredPlayers: 4})

		_, err := cs.DeleteOwn(ctx, "m1", "u2")
		assertCode(t, err, apperrors.CodeAccessDenied)

		// Still there.
		if _, err := cs.GetByID(ctx, "m1"); err != nil {
			t.Errorf("match disappeared after a denied delete: %v", err)
		}
	})
}

func TestDeleteAny(t *testing.T) {
	ctx := context.Background()
	cs, repo, bus := newCRUDFixture(t)
	rec := newEventRecorder(bus, models.EventMatchDeleted, models.EventMatchDeletedByAdmin)
	seedMatch(t, repo, &models.Match{MatchID: "m1", CreatorID: "u1", RequiredPlayers: 4})

	// No creator check at all; the route's admin middleware is the only gate.
	if _, err := cs.DeleteAny(ctx, "m1"); err != nil {
		t.Fatalf("DeleteAny() error = %v", err)
	}
	_, err := cs.GetByID(ctx, "m1")
	assertCode(t, err, apperrors.CodeNotFound)

	bus.Drain()
	if got := rec.countKind(models.EventMatchDeletedByAdmin); got != 1 {
		t.Errorf("admin-deleted events = %d, want 1", got)
	}
	if got := rec.countKind(models.EventMatchDeleted); got != 0 {
		t.Errorf("creator-deleted events = %d, want 0", got)
	}
}

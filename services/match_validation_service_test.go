package services

import (
	"testing"
	"time"

	"futnion_server/apperrors"
	"futnion_server/models"
)

func testMatch() *models.Match {
	return &models.Match{
		MatchID:         "match-1",
		Name:            "Friday 5-a-side",
		MatchDate:       time.Now().Add(48 * time.Hour),
		RequiredPlayers: 4,
		CreatorID:       "creator-1",
		Participants:    []string{"user-1", "user-2"},
	}
}

func assertCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	if got := apperrors.CodeOf(err); got != code {
		t.Errorf("error code got = %s, want %s", got, code)
	}
}

func TestCanJoin(t *testing.T) {
	vs := NewMatchValidationService()

	t.Run("allows a new user", func(t *testing.T) {
		if err := vs.CanJoin(testMatch(), "user-3"); err != nil {
			t.Errorf("CanJoin() error = %v, want nil", err)
		}
	})

	t.Run("rejects the creator", func(t *testing.T) {
		assertCode(t, vs.CanJoin(testMatch(), "creator-1"), apperrors.CodeAlreadyCreator)
	})

	t.Run("rejects an existing participant", func(t *testing.T) {
		assertCode(t, vs.CanJoin(testMatch(), "user-1"), apperrors.CodeAlreadyJoined)
	})

	t.Run("rejects a full match", func(t *testing.T) {
		match := testMatch()
		match.Participants = []string{"user-1", "user-2", "user-3", "user-4"}
		assertCode(t, vs.CanJoin(match, "user-5"), apperrors.CodeMatchFull)
	})

	t.Run("normalizes ids before comparing", func(t *testing.T) {
		// A differently-cased or padded id is the same user; anything else
		// would let the same person join twice.
		assertCode(t, vs.CanJoin(testMatch(), "  USER-1  "), apperrors.CodeAlreadyJoined)
		assertCode(t, vs.CanJoin(testMatch(), "CREATOR-1"), apperrors.CodeAlreadyCreator)
	})
}

func TestCanLeave(t *testing.T) {
	vs := NewMatchValidationService()
	now := time.Now()

	t.Run("allows leaving well before kickoff", func(t *testing.T) {
		match := testMatch()
		match.MatchDate = now.Add(LeaveCooldown + time.Second)
		if err := vs.CanLeave(match, "user-1", now); err != nil {
			t.Errorf("CanLeave() error = %v, want nil", err)
		}
	})

	t.Run("rejects a non-participant", func(t *testing.T) {
		assertCode(t, vs.CanLeave(testMatch(), "stranger", now), apperrors.CodeNotJoined)
	})

	t.Run("rejects inside the cooldown window", func(t *testing.T) {
		match := testMatch()
		match.MatchDate = now.Add(30 * time.Minute)
		assertCode(t, vs.CanLeave(match, "user-1", now), apperrors.CodeCooldownActive)
	})

	t.Run("rejects exactly at the boundary", func(t *testing.T) {
		match := testMatch()
		match.MatchDate = now.Add(LeaveCooldown - time.Nanosecond)
		assertCode(t, vs.CanLeave(match, "user-1", now), apperrors.CodeCooldownActive)
	})

	t.Run("rejects after kickoff", func(t *testing.T) {
		match := testMatch()
		match.MatchDate = now.Add(-time.Hour)
		assertCode(t, vs.CanLeave(match, "user-1", now), apperrors.CodeCooldownActive)
	})
}

func TestIsCreator(t *testing.T) {
	vs := NewMatchValidationService()

	if !vs.IsCreator(testMatch(), "creator-1") {
		t.Error("IsCreator() = false for the creator, want true")
	}
	if !vs.IsCreator(testMatch(), " CREATOR-1 ") {
		t.Error("IsCreator() = false for a non-canonical creator id, want true")
	}
	if vs.IsCreator(testMatch(), "user-1") {
		t.Error("IsCreator() = true for a participant, want false")
	}
}

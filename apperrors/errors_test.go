package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeOf(t *testing.T) {
	err := New(CodeMatchFull, "this match is already full")
	if CodeOf(err) != CodeMatchFull {
		t.Errorf("CodeOf() = %s, want %s", CodeOf(err), CodeMatchFull)
	}

	wrapped := fmt.Errorf("handling request: %w", err)
	if CodeOf(wrapped) != CodeMatchFull {
		t.Errorf("CodeOf(wrapped) = %s, want %s", CodeOf(wrapped), CodeMatchFull)
	}

	if CodeOf(errors.New("plain")) != CodeInternal {
		t.Errorf("CodeOf(plain error) = %s, want %s", CodeOf(errors.New("plain")), CodeInternal)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(CodeInternal, "failed to load match", cause)
	if !errors.Is(err, cause) {
		t.Error("Wrap() lost the underlying cause")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeAccessDenied, http.StatusForbidden},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeMatchFull, http.StatusConflict},
		{CodeAlreadyJoined, http.StatusConflict},
		{CodeCooldownActive, http.StatusConflict},
		{CodeConcurrentModification, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(New(tc.code, "x")); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}

	if got := HTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d, want 500", got)
	}
}

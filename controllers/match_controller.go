package controllers

import (
	"encoding/json"
	"net/http"

	"futnion_server/apperrors"
	"futnion_server/middleware"
	"futnion_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for match-related actions
type MatchController struct {
	CRUD         *services.MatchCRUDService
	Participants *services.MatchParticipantService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(crud *services.MatchCRUDService, participants *services.MatchParticipantService) *MatchController {
	return &MatchController{CRUD: crud, Participants: participants}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, apperrors.HTTPStatus(err), map[string]interface{}{
		"code":  string(apperrors.CodeOf(err)),
		"error": err.Error(),
	})
}

// GetMatches handles listing every match
func (mc *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := mc.CRUD.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

// GetMatchByID handles fetching a single match
func (mc *MatchController) GetMatchByID(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]
	match, err := mc.CRUD.GetByID(r.Context(), matchID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// CreateMatch handles creating a match on behalf of the authenticated caller
func (mc *MatchController) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid request body", err))
		return
	}

	match, err := mc.CRUD.Create(r.Context(), middleware.UserID(r), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, match)
}

// UpdateMatch handles field edits on a match
func (mc *MatchController) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid request body", err))
		return
	}

	match, err := mc.CRUD.Update(r.Context(), matchID, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// DeleteMatch handles creator-initiated deletion
func (mc *MatchController) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]
	match, err := mc.CRUD.DeleteOwn(r.Context(), matchID, middleware.UserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Match deleted successfully",
		"match":   match,
	})
}

// DeleteAnyMatch handles administrative deletion; access is gated by the
// admin middleware on the route, not here.
func (mc *MatchController) DeleteAnyMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]
	match, err := mc.CRUD.DeleteAny(r.Context(), matchID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Match deleted successfully",
		"match":   match,
	})
}

// JoinMatch handles the authenticated caller joining a match
func (mc *MatchController) JoinMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]
	match, err := mc.Participants.Join(r.Context(), matchID, middleware.UserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// LeaveMatch handles the authenticated caller leaving a match
func (mc *MatchController) LeaveMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]
	match, err := mc.Participants.Leave(r.Context(), matchID, middleware.UserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// RemoveParticipant handles an administrator removing a participant
func (mc *MatchController) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	match, err := mc.Participants.RemoveParticipant(r.Context(), vars["id"], vars["userId"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// GetMyMatches handles listing the matches the caller participates in
func (mc *MatchController) GetMyMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := mc.Participants.GetMyMatches(r.Context(), middleware.UserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

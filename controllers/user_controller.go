package controllers

import (
	"encoding/json"
	"net/http"

	"futnion_server/apperrors"
	"futnion_server/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for user accounts
type UserController struct {
	Auth *services.UserAuthService
	CRUD *services.UserCRUDService
}

// NewUserController creates a new UserController instance
func NewUserController(auth *services.UserAuthService, crud *services.UserCRUDService) *UserController {
	return &UserController{Auth: auth, CRUD: crud}
}

// Register handles account creation
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid request body", err))
		return
	}

	user, err := uc.Auth.Register(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// Login handles credential verification and token issuance
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid request body", err))
		return
	}

	token, user, err := uc.Auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// GetUsers handles listing every user (admin only, gated on the route)
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.CRUD.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// GetUserByID handles fetching a single user
func (uc *UserController) GetUserByID(w http.ResponseWriter, r *http.Request) {
	user, err := uc.CRUD.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// UpdateUser handles profile edits
func (uc *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid request body", err))
		return
	}

	user, err := uc.CRUD.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles account deletion (admin only, gated on the route)
func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := uc.CRUD.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User deleted successfully",
		"user":    user,
	})
}

package routes

import (
	"futnion_server/controllers"
	"futnion_server/middleware"
	"futnion_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under /api/matches
func RegisterMatchRoutes(r *mux.Router, crud *services.MatchCRUDService, participants *services.MatchParticipantService, tokens *services.TokenService) {
	controller := controllers.NewMatchController(crud, participants)
	auth := middleware.Auth(tokens)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	// Authenticated routes
	authed := matchRouter.NewRoute().Subrouter()
	authed.Use(auth)
	authed.HandleFunc("/mine", controller.GetMyMatches).Methods("GET")
	authed.HandleFunc("", controller.CreateMatch).Methods("POST")
	authed.HandleFunc("/{id}", controller.UpdateMatch).Methods("PUT")
	authed.HandleFunc("/{id}", controller.DeleteMatch).Methods("DELETE")
	authed.HandleFunc("/{id}/join", controller.JoinMatch).Methods("POST")
	authed.HandleFunc("/{id}/leave", controller.LeaveMatch).Methods("POST")

	// Administrative routes: the services behind these perform no
	// authorization of their own.
	admin := matchRouter.NewRoute().Subrouter()
	admin.Use(auth, middleware.AdminOnly)
	admin.HandleFunc("/admin/{id}", controller.DeleteAnyMatch).Methods("DELETE")
	admin.HandleFunc("/{id}/participants/{userId}", controller.RemoveParticipant).Methods("DELETE")

	// Public routes
	matchRouter.HandleFunc("", controller.GetMatches).Methods("GET")
	matchRouter.HandleFunc("/{id}", controller.GetMatchByID).Methods("GET")
}

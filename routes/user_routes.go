package routes

import (
	"futnion_server/controllers"
	"futnion_server/middleware"
	"futnion_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for user operations under /api/users
func RegisterUserRoutes(r *mux.Router, authService *services.UserAuthService, crud *services.UserCRUDService, tokens *services.TokenService) {
	controller := controllers.NewUserController(authService, crud)
	auth := middleware.Auth(tokens)

	userRouter := r.PathPrefix("/api/users").Subrouter()

	// Public routes
	userRouter.HandleFunc("", controller.Register).Methods("POST")
	userRouter.HandleFunc("/login", controller.Login).Methods("POST")

	// Authenticated routes
	authed := userRouter.NewRoute().Subrouter()
	authed.Use(auth)
	authed.HandleFunc("/{id}", controller.GetUserByID).Methods("GET")
	authed.HandleFunc("/{id}", controller.UpdateUser).Methods("PUT")

	// Administrative routes
	admin := userRouter.NewRoute().Subrouter()
	admin.Use(auth, middleware.AdminOnly)
	admin.HandleFunc("", controller.GetUsers).Methods("GET")
	admin.HandleFunc("/{id}", controller.DeleteUser).Methods("DELETE")
}

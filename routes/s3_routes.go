package routes

import (
	"futnion_server/controllers"
	"futnion_server/middleware"
	"futnion_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for avatar storage operations
func RegisterS3Routes(r *mux.Router, tokens *services.TokenService) {
	avatarRouter := r.PathPrefix("/api/avatars").Subrouter()
	avatarRouter.Use(middleware.Auth(tokens))
	avatarRouter.HandleFunc("/upload-url", controllers.GenerateAvatarUploadURL).Methods("POST")
	avatarRouter.HandleFunc("/read-url", controllers.GetAvatarReadURL).Methods("POST")
}

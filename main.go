package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"futnion_server/listeners"
	"futnion_server/routes"
	"futnion_server/services"
	"futnion_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and adapter
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Repositories
	matchRepository := services.NewDynamoMatchRepository(dynamoService)
	userRepository := services.NewDynamoUserRepository(dynamoService)

	// Event bus, constructed once and injected everywhere
	bus := services.NewEventBus(services.DefaultEventQueueSize)
	defer bus.Close()

	// Core services
	validationService := services.NewMatchValidationService()
	participantService := services.NewMatchParticipantService(matchRepository, validationService, bus)
	matchCRUDService := services.NewMatchCRUDService(matchRepository, validationService, bus)
	passwordService := services.NewPasswordService()
	tokenService := services.NewTokenService(jwtSecret)
	userAuthService := services.NewUserAuthService(userRepository, passwordService, tokenService, bus)
	userCRUDService := services.NewUserCRUDService(userRepository, bus)

	// Socket.IO server for realtime roster updates
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("❌ Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Listeners subscribe before any traffic is served
	auditListener := listeners.NewAuditLogListener()
	auditListener.Attach(bus)
	notificationListener := listeners.NewNotificationListener()
	notificationListener.Attach(bus)
	statisticsListener := listeners.NewStatisticsListener()
	statisticsListener.Attach(bus)
	realtimeListener := listeners.NewRealtimeListener(socketServer)
	realtimeListener.Attach(bus)

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Futnion")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterMatchRoutes(r, matchCRUDService, participantService, tokenService)
	routes.RegisterUserRoutes(r, userAuthService, userCRUDService, tokenService)
	routes.RegisterS3Routes(r, tokenService)
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

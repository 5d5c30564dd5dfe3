package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/pattern-mastery/backend/internal/auth"
	"github.com/pattern-mastery/backend/internal/catalog"
	"github.com/pattern-mastery/backend/internal/database"
	"github.com/pattern-mastery/backend/internal/mastery"
	"github.com/pattern-mastery/backend/internal/middleware"
	"github.com/pattern-mastery/backend/internal/practice"
	"github.com/pattern-mastery/backend/internal/quiz"
	"github.com/pattern-mastery/backend/internal/stats"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Stores
	catalogStore := catalog.NewStore(db)
	masteryStore := mastery.NewStore(db)
	quizStore := quiz.NewStore(db)
	practiceStore := practice.NewStore(db)
	statsStore := stats.NewStore(db)

	// Services
	catalogService := catalog.NewService(catalogStore)
	masteryService := mastery.NewService(masteryStore, catalogService)
	quizService := quiz.NewService(quizStore, catalogStore, masteryService)
	practiceService := practice.NewService(practiceStore, catalogStore, masteryService)
	statsService := stats.NewService(statsStore, masteryService)

	catalogService.SetMasteryService(masteryService)
	masteryService.SetActivityRecorder(statsService)

	if err := catalogService.Seed(); err != nil {
		log.Fatalf("Failed to seed pattern catalog: %v", err)
	}

	// Handlers
	authHandler := auth.NewHandler(db)
	catalogHandler := catalog.NewHandler(catalogService)
	masteryHandler := mastery.NewHandler(masteryService)
	quizHandler := quiz.NewHandler(quizService)
	practiceHandler := practice.NewHandler(practiceService)
	statsHandler := stats.NewHandler(statsService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	catalogHandler.RegisterRoutes(protected)
	masteryHandler.RegisterRoutes(protected)
	quizHandler.RegisterRoutes(protected)
	practiceHandler.RegisterRoutes(protected)
	statsHandler.RegisterRoutes(protected)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Background maintenance
	scheduler := stats.NewScheduler(statsStore, masteryStore)
	scheduler.Start()
	defer scheduler.Stop()

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

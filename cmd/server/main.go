package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4/middleware"

	"github.com/konoJobChange/tyoto-todo-backend/internal/handlers"
	"github.com/konoJobChange/tyoto-todo-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		log.Fatal("GOOGLE_CLOUD_PROJECT environment variable is required")
	}

	firestoreService, err := services.NewFirestoreService(projectID)
	if err != nil {
		log.Fatalf("Failed to create Firestore service: %v", err)
	}
	defer firestoreService.Close()

	verifier, err := services.NewFirebaseVerifier(projectID)
	if err != nil {
		log.Fatalf("Failed to create Firebase token verifier: %v", err)
	}

	e := handlers.NewRouter(firestoreService, verifier)
	e.Use(middleware.Logger())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := e.Start(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

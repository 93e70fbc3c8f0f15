package main

import (
	"log"

	"portfolio/internal/app"
	"portfolio/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()

	log.Printf("Server starting on port %d (storage mode: %s)", cfg.Port, cfg.StorageMode)
	if err := a.Run(cfg.Addr()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/domain"
	"portfolio/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// ErrAdminExists reports that the single admin slot is already taken.
var ErrAdminExists = errors.New("an admin account already exists")

// setup-admin provisions the single admin account. It refuses to run a
// second time: this deployment has exactly one admin, created out of
// band, never through the HTTP surface.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	username := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	admins := repository.NewAdminRepository(db)
	if err := provision(context.Background(), admins, username, password); err != nil {
		log.Fatalf("Setup failed: %v", err)
	}

	log.Printf("Admin %q created", username)
}

type adminStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, a *domain.AdminPrincipal) error
}

// provision creates the admin principal unless one already exists.
func provision(ctx context.Context, admins adminStore, username, password string) error {
	count, err := admins.Count(ctx)
	if err != nil {
		return fmt.Errorf("check existing admins: %w", err)
	}
	if count > 0 {
		return ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return admins.Create(ctx, &domain.AdminPrincipal{
		Username:     username,
		PasswordHash: string(hash),
	})
}

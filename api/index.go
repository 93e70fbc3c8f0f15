// Package handler is the serverless entrypoint. The platform imports
// this package and routes every /api/* request through Handler; the
// application is wired once at cold start and reused across
// invocations within the same instance.
package handler

import (
	"log"
	"net/http"

	"portfolio/internal/app"
	"portfolio/internal/config"
)

var application *app.App

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	application, err = app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
}

// Handler serves a single request through the shared router.
func Handler(w http.ResponseWriter, r *http.Request) {
	application.Engine().ServeHTTP(w, r)
}

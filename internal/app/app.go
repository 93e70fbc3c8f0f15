package app

import (
	"context"
	"fmt"
	"net/http"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/localstore"
	"portfolio/internal/middleware"
	"portfolio/internal/modules/admin"
	"portfolio/internal/modules/auth"
	"portfolio/internal/modules/contact"
	jwtsvc "portfolio/internal/pkg/jwt"
	"portfolio/internal/pkg/response"
	"portfolio/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App holds the wired application: store, token authority and router.
// The same wiring backs the long-running server and the serverless
// entrypoint.
type App struct {
	cfg    *config.Config
	db     *gorm.DB
	local  *localstore.Store
	engine *gin.Engine
}

// New builds the application for the configured storage mode. In
// database mode the SQL store and JWT authority are used; in local mode
// everything runs against an on-device bbolt file with locally issued
// tokens.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	var (
		messages messageStore
		login    auth.LoginService
		verifier middleware.TokenVerifier
	)

	switch cfg.StorageMode {
	case config.ModeDatabase:
		db, err := database.Connect(cfg.DatabaseURI)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := repository.AutoMigrate(db); err != nil {
			database.Close(db)
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		a.db = db

		jwt := jwtsvc.New(cfg.TokenSecret, cfg.TokenTTL)
		messages = repository.NewMessageRepository(db)
		login = auth.NewService(repository.NewAdminRepository(db), jwt)
		verifier = jwt

	case config.ModeLocal:
		store, err := localstore.Open(cfg.LocalDBPath)
		if err != nil {
			return nil, fmt.Errorf("open local store: %w", err)
		}
		a.local = store

		localAuth := localstore.NewAuth(store)
		messages = store
		login = localLogin{auth: localAuth}
		verifier = localAuth

	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.StorageMode)
	}

	a.engine = buildRouter(messages, login, verifier)
	return a, nil
}

// Engine exposes the router for serverless handlers and tests.
func (a *App) Engine() *gin.Engine {
	return a.engine
}

// Run starts the HTTP server and blocks.
func (a *App) Run(addr string) error {
	return a.engine.Run(addr)
}

func (a *App) Close() error {
	if a.db != nil {
		return database.Close(a.db)
	}
	if a.local != nil {
		return a.local.Close()
	}
	return nil
}

// messageStore is the full store surface the router needs: public
// submissions plus the admin inbox. Satisfied by the SQL repository and
// the bbolt store alike.
type messageStore interface {
	contact.MessageWriter
	admin.MessageRepositoryInterface
}

func buildRouter(messages messageStore, login auth.LoginService, verifier middleware.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	contact.NewHandler(contact.NewService(messages)).RegisterRoutes(api)
	auth.NewHandler(login).RegisterRoutes(api)

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.BearerAuth(verifier))
	admin.NewHandler(admin.NewService(messages)).RegisterRoutes(adminGroup)

	return r
}

// localLogin adapts the local token authority to the login transport.
type localLogin struct {
	auth *localstore.Auth
}

func (l localLogin) Login(_ context.Context, req auth.LoginRequest) (string, error) {
	token, err := l.auth.Login(req.Username, req.Password)
	if err != nil {
		return "", auth.ErrInvalidCredentials
	}
	return token, nil
}

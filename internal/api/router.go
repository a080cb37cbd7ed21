package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/accountly/user-service/internal/api/handler"
	"github.com/accountly/user-service/internal/api/middleware"
	"github.com/accountly/user-service/internal/core/service"
	"github.com/accountly/user-service/internal/infrastructure/db/postgres"
	healthhandlers "github.com/accountly/user-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, jwtSecret string, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	tokens, err := service.NewTokenService(jwtSecret, time.Hour)
	if err != nil {
		return nil, err
	}
	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	authHandler := handler.NewAuthHandler(authService, log)
	userHandler := handler.NewUserHandler(userService, log)

	// --- Public routes ---
	e.POST("/user", authHandler.Create)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	protected := e.Group("/users", middleware.Auth(tokens))
	protected.GET("", userHandler.List)
	protected.GET("/:id", userHandler.Get)
	protected.PUT("/:id", userHandler.Update)
	protected.DELETE("/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

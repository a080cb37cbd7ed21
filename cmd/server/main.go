package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/accountly/user-service/internal/api"
	"github.com/accountly/user-service/internal/infrastructure/config"
	"github.com/accountly/user-service/internal/infrastructure/db/postgres"
	"github.com/accountly/user-service/pkg/logger"
)

func main() {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is configured from cfg, so this one failure goes to stderr.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	e, err := api.NewRouter(db, cfg.JWTSecret, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hariz/collegems/internal/pkg/logger"
	"github.com/hariz/collegems/internal/server"
)

// @title College Management System API
// @version 1.0
// @description Administrative backend for managing students, courses, faculty and departments

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Load .env if present; real environment variables win either way.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

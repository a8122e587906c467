package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/server"
)

func main() {
	// Minimal stderr logger for failures before the configured logger exists.
	fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()

	srv, err := server.NewServer()
	if err != nil {
		fallback.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives or startup fails.
	if err := srv.Run(); err != nil {
		fallback.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}

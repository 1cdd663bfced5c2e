package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pointset/distmat/config"
	"github.com/pointset/distmat/httpapi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ---------------------------

func setupLogging() {
	if config.Cfg.PrettyLogOutput {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	// ---------------------------
	// Default level is info, unless debug flag is present
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.Cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Interface("config", config.Cfg).Msg("Environment config")
	}
	// ---------------------------
	log.Debug().Msg("Debug mode enabled")
}

// ---------------------------

func main() {
	setupLogging()
	log.Info().Str("version", "0.0.1").Msg("Starting distmat")
	// ---------------------------
	httpServer := httpapi.RunHTTPServer()
	// ---------------------------
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced to shut")
	}
}

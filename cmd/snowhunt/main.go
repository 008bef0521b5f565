// Package main is the entry point for Snowhunt.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/snowhunt/internal/game"
	"github.com/samdwyer/snowhunt/internal/gamedata"
	"github.com/samdwyer/snowhunt/internal/telemetry"
	"github.com/samdwyer/snowhunt/pkg/logger"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_SNOWHUNT_API_KEY available
	envErr := godotenv.Load()

	cfg, cfgErr := game.ConfigFromEnv()

	logOut, closeLog := openLog(cfg.LogFile)
	defer closeLog()
	logger.Init(logger.Options{Output: logOut})
	log := logger.Component("main")

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "snowhunt: invalid configuration: %v\n", cfgErr)
		os.Exit(2)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("Telemetry setup failed, running without observability.")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.WithError(err).Error("Error shutting down telemetry.")
			}
		}()
	}

	tuning, err := gamedata.LoadTuning()
	if err != nil {
		log.WithError(err).Fatal("Failed to load tuning.")
	}

	log.WithFields(logrus.Fields{
		"session_id": telemetry.SessionID(),
		"seed":       cfg.Seed,
		"tick_rate":  cfg.TickRate,
	}).Info("Starting Snowhunt.")

	g, err := game.New(cfg, tuning)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize game.")
	}

	if err := g.Run(ctx); err != nil {
		log.WithError(err).Fatal("Game error.")
	}
}

// openLog opens the log file. The terminal belongs to the game, so without
// a file logs are discarded.
func openLog(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snowhunt: cannot open log file: %v\n", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may have an unexpanded variable reference, so the
	// header is built here.
	apiKey := os.Getenv("HONEYCOMB_SNOWHUNT_API_KEY")
	dataset := os.Getenv("HONEYCOMB_SNOWHUNT_DATASET")
	if dataset == "" {
		dataset = "snowhunt"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

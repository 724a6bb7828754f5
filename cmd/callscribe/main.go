// Copyright 2026 Soniclabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/soniclabs/callscribe"
	"github.com/soniclabs/callscribe/ai"
	"github.com/soniclabs/callscribe/api"
	"github.com/soniclabs/callscribe/stt/elevenlabs"
)

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "callscribe",
		Usage: "Call ingestion service: diarized transcription, storage, and AI insights",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP ingestion service",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory",
						Value:   "./callscribe-data",
					},
					&cli.StringFlag{
						Name:  "addr",
						Usage: "HTTP listen address",
						Value: ":5000",
					},
					&cli.StringFlag{
						Name:    "elevenlabs-api-key",
						Usage:   "ElevenLabs API key for transcription",
						EnvVars: []string{"ELEVENLABS_API_KEY"},
					},
					&cli.StringFlag{
						Name:  "stt-model",
						Usage: "ElevenLabs transcription model",
						Value: elevenlabs.DefaultModelID,
					},
					&cli.StringFlag{
						Name:    "ai-host",
						Usage:   "OpenAI-compatible chat API host",
						EnvVars: []string{"OPENAI_HOST"},
						Value:   "https://api.openai.com/v1",
					},
					&cli.StringFlag{
						Name:    "ai-token",
						Usage:   "API token for the chat service",
						EnvVars: []string{"OPENAI_API_KEY"},
						Value:   "none",
					},
					&cli.StringFlag{
						Name:  "ai-model",
						Usage: "Chat model used for call analysis",
						Value: "gpt-4o",
					},
					&cli.IntFlag{
						Name:  "upload-concurrency",
						Usage: "Maximum uploads processed concurrently",
						Value: 4,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	apiKey := c.String("elevenlabs-api-key")
	if apiKey == "" {
		return fmt.Errorf("an ElevenLabs API key is required (--elevenlabs-api-key or ELEVENLABS_API_KEY)")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithToken(c.String("ai-token")),
		ai.WithModel(c.String("ai-model")),
	)

	service, err := callscribe.NewService(c.String("db"),
		callscribe.WithElevenLabs(apiKey, elevenlabs.WithModelID(c.String("stt-model"))),
		callscribe.WithAIConfig(aiConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer service.Close()

	pipeline, err := service.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}

	server, err := api.NewServer(c.String("addr"), service.CallRepository(), pipeline,
		api.WithUploadConcurrency(c.Int("upload-concurrency")))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := server.Start(); err != nil {
		return err
	}

	// Block until interrupted
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("shutting down", "signal", sig.String())

	return server.Stop(context.Background())
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

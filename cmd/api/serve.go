package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"FitCoach_AIProject/internal/config"
	"FitCoach_AIProject/internal/handler"
	"FitCoach_AIProject/internal/llm"
	"FitCoach_AIProject/internal/server"
	"FitCoach_AIProject/internal/storage"
	"FitCoach_AIProject/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, closers, err := buildDependencies(ctx, cfg)
	defer func() {
		for _, c := range closers {
			if cerr := c.Close(); cerr != nil {
				log.Warn().Err(cerr).Msg("close failed")
			}
		}
	}()
	if err != nil {
		return err
	}
	warnMissingCredentials(cfg)

	pages, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	router := server.NewRouter(handler.New(deps), cfg.Server, pages)
	return server.Run(ctx, server.New(cfg.Server, router), cfg.Server.ShutdownTimeout)
}

// buildDependencies creates the upstream clients once for the process lifetime.
func buildDependencies(ctx context.Context, cfg config.Config) (handler.Dependencies, []io.Closer, error) {
	var closers []io.Closer

	speech, err := llm.NewSynthesizer(ctx, cfg.Speech)
	if err != nil {
		return handler.Dependencies{}, closers, err
	}
	closers = append(closers, speech)

	deps := handler.Dependencies{
		Planner:          llm.NewPlanClient(cfg.Plan),
		Images:           llm.NewImageClient(cfg.Image),
		Speech:           speech,
		SanitizePlanHTML: cfg.SanitizePlanHTML,
	}

	if cfg.Storage.UsageDBPath != "" {
		store, err := storage.Open(cfg.Storage.UsageDBPath)
		if err != nil {
			return deps, closers, err
		}
		closers = append(closers, store)
		deps.Usage = store
		log.Info().Str("path", cfg.Storage.UsageDBPath).Msg("usage ledger enabled")
	}
	return deps, closers, nil
}

// Missing keys never stop the server; the matching endpoint answers 500.
func warnMissingCredentials(cfg config.Config) {
	if cfg.Plan.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set, plan generation will fail")
	}
	if cfg.Image.APIToken == "" {
		log.Warn().Msg("REPLICATE_API_TOKEN is not set, image generation will fail")
	}
	switch cfg.Speech.Provider {
	case config.SpeechProviderGoogle:
		if cfg.Speech.GoogleCredentialsFile == "" {
			log.Warn().Msg("GOOGLE_APPLICATION_CREDENTIALS is not set, speech synthesis will fail")
		}
	default:
		if cfg.Speech.APIKey == "" {
			log.Warn().Msg("ELEVENLABS_API_KEY is not set, speech synthesis will fail")
		}
	}
}

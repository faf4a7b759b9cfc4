// @title        AI Fitness Coach API
// @version      1.0
// @description  프로필 기반 운동/식단 플랜 생성, 이미지 생성, 음성 변환 API
// @BasePath     /
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"FitCoach_AIProject/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fitcoach",
	Short: "AI fitness coach server",
	Long: `Serves the fitness coach page and its JSON API.

Without a subcommand the HTTP server is started (same as "serve").`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (or set CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)
}

// loadConfig reads .env files and the config, then configures logging.
func loadConfig() (config.Config, error) {
	config.LoadDotEnv()
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	setupLogging(cfg.Log, os.Stderr)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

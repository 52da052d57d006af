package main

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/promoforge/compositor/compose"
	"github.com/promoforge/compositor/config"
	"github.com/promoforge/compositor/export"
	"github.com/promoforge/compositor/history"
)

const (
	appName = "promoforge"
	version = "v1.2.0"
)

var configPath string

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Render and export social campaign assets",
		Version: version,
		Long: `PromoForge renders branded social assets from campaign copy.

A request (content, title, brand, hashtags, format) is laid out and drawn
onto a story or square canvas. Exports are recorded so any past asset can
be listed and replayed pixel-for-pixel.`,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "promoforge.yaml", "Path to config file")

	rootCmd.AddCommand(newRenderCmd(), newExportCmd(), newHistoryCmd(), newReplayCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	return cfg, nil
}

func buildCompositor(cfg config.Config) (*compose.Compositor, error) {
	opts := []compose.Option{compose.WithLogger(log.Logger)}
	if cfg.Brand != "" {
		opts = append(opts, compose.WithBrandLabel(cfg.Brand))
	}
	return compose.New(opts...)
}

// buildStore picks the history backend. Without Redis the store is
// in-process only: exports still succeed, history just does not outlive
// the invocation.
func buildStore(cfg config.Config) history.Store {
	if !cfg.Redis.Enabled {
		log.Debug().Msg("redis disabled, history is in-process only")
		return history.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return history.NewRedisStore(client, log.Logger, history.WithKey(cfg.Redis.Key))
}

func buildCoordinator(cfg config.Config) (*export.Coordinator, error) {
	compositor, err := buildCompositor(cfg)
	if err != nil {
		return nil, err
	}
	enc, err := cfg.OutputEncoding()
	if err != nil {
		return nil, err
	}
	return export.New(compositor, buildStore(cfg),
		export.WithEncoding(enc),
		export.WithLogger(log.Logger)), nil
}

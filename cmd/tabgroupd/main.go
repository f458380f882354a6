// Command tabgroupd serves the tab clustering API.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"
	"github.com/spf13/cobra"

	"github.com/hupe1980/tabgroup"
	"github.com/hupe1980/tabgroup/config"
	"github.com/hupe1980/tabgroup/embedding"
	"github.com/hupe1980/tabgroup/naming"
	"github.com/hupe1980/tabgroup/server"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tabgroupd",
		Short: "Tab clustering service",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "tabgroup.yaml", "path to the YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the clustering API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Logging)

	embedder, err := newEmbedder(cfg.Embedding)
	if err != nil {
		return err
	}
	namer, err := newNamer(cfg.Naming)
	if err != nil {
		return err
	}

	pipeline := tabgroup.New(
		tabgroup.WithMinClusterSize(cfg.Clustering.MinClusterSize),
		tabgroup.WithMinSamples(cfg.Clustering.MinSamples),
		tabgroup.WithMaxClusterSize(cfg.Clustering.MaxClusterSize),
		tabgroup.WithSimilarityThreshold(cfg.Clustering.SimilarityThreshold),
		tabgroup.WithSelectionEpsilon(cfg.Clustering.SelectionEpsilon),
		tabgroup.WithSeed(cfg.Clustering.Seed),
		tabgroup.WithLogger(logger),
	)

	svc := server.New(pipeline, embedder, namer, server.Options{
		RateLimit: cfg.Server.RateLimit,
		Burst:     cfg.Server.Burst,
		Logger:    logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("serving", "addr", cfg.Server.Addr)
	return httpServer.ListenAndServe()
}

func newLogger(cfg config.LoggingConfig) *tabgroup.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	if cfg.Format == "json" {
		return tabgroup.NewJSONLogger(level)
	}
	return tabgroup.NewTextLogger(level)
}

func newEmbedder(cfg config.EmbeddingConfig) (embedding.Embedder, error) {
	switch cfg.Provider {
	case "static":
		return embedding.NewStaticEmbedder(cfg.Dimension), nil
	case "openai":
		apiKey := cfg.APIKey()
		if apiKey == "" {
			return nil, fmt.Errorf("missing API key: set %s", cfg.APIKeyEnv)
		}
		return embedding.NewOpenAIEmbedder(apiKey,
			embedding.WithModel(openai.EmbeddingModel(cfg.Model)),
			embedding.WithBatchSize(cfg.BatchSize),
		), nil
	default:
		return nil, errors.New("unknown embedding provider: " + cfg.Provider)
	}
}

func newNamer(cfg config.NamingConfig) (naming.Namer, error) {
	switch cfg.Provider {
	case "noop":
		return naming.NoopNamer{}, nil
	case "openai":
		apiKey := cfg.APIKey()
		if apiKey == "" {
			return nil, fmt.Errorf("missing API key: set %s", cfg.APIKeyEnv)
		}
		return naming.NewOpenAINamer(apiKey, naming.WithModel(openai.ChatModel(cfg.Model))), nil
	default:
		return nil, errors.New("unknown naming provider: " + cfg.Provider)
	}
}

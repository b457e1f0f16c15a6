package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sentiment-analysis/config"
	_ "sentiment-analysis/docs" // Swagger docs
	"sentiment-analysis/internal/cache"
	"sentiment-analysis/internal/httpserver"
	"sentiment-analysis/internal/matcher"
	"sentiment-analysis/internal/metrics"
	"sentiment-analysis/internal/middleware"
	"sentiment-analysis/internal/model"
	"sentiment-analysis/internal/sentiment/usecase"
	"sentiment-analysis/internal/topic"
	"sentiment-analysis/pkg/llmprovider"
	"sentiment-analysis/pkg/log"
	"sentiment-analysis/pkg/trace"
)

// @title       Sentiment Analysis API
// @description Keyword-targeted sentiment classification for Vietnamese social-media text, backed by an LLM with caching and concurrency limiting.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	environment := model.Environment(cfg.Environment.Name)
	logger.Info(ctx, "Starting Sentiment Analysis Service...")
	logger.Infof(ctx, "Environment: %s", environment)
	if environment == model.EnvironmentProduction && cfg.HTTPServer.Mode == "debug" {
		logger.Warn(ctx, "Running production environment with gin debug mode")
	}

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 4. Cache gateway
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var gateway cache.Gateway
	switch cfg.Cache.Backend {
	case "valkey":
		gateway, err = cache.NewValkey(logger, cfg.Cache.Valkey.Address, cfg.Cache.Valkey.Username, cfg.Cache.Valkey.Password, ttl)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Valkey: ", err)
			return
		}
		logger.Infof(ctx, "Cache backend: valkey at %s", cfg.Cache.Valkey.Address)
	default:
		gateway = cache.NewMemory(logger, cfg.Cache.MaxEntries, ttl)
		logger.Infof(ctx, "Cache backend: memory (max_entries=%d, ttl=%s)", cfg.Cache.MaxEntries, ttl)
	}

	// 5. Topic metadata store (optional)
	var topicRepo topic.Repository
	if cfg.Topic.Enabled {
		sqliteRepo, tErr := topic.NewSQLite(logger, cfg.Topic.SQLitePath)
		if tErr != nil {
			logger.Warnf(ctx, "Topic store not available (optional): %v", tErr)
		} else {
			topicRepo = topic.NewCached(sqliteRepo, cfg.Topic.CacheEntries, time.Duration(cfg.Topic.CacheTTLSeconds)*time.Second)
			logger.Infof(ctx, "Topic store initialized at %s", cfg.Topic.SQLitePath)
		}
	}

	// 6. Pipeline use case
	registry := prometheus.NewRegistry()
	rec := metrics.New(registry)

	var variants map[string][]string
	if len(cfg.Matcher.Variants) > 0 {
		variants = cfg.Matcher.Variants
	}
	requestTimeout, _ := time.ParseDuration(cfg.Limits.RequestTimeout)

	uc := usecase.New(
		logger,
		manager,
		gateway,
		topicRepo,
		matcher.New(variants),
		trace.NewLogSink(logger),
		rec,
		usecase.Options{
			MaxConcurrent:  int64(cfg.Limits.MaxConcurrent),
			RequestTimeout: requestTimeout,
			PromptTemplate: cfg.LLM.PromptTemplate,
			Temperature:    cfg.LLM.Temperature,
			MaxTokens:      cfg.LLM.MaxTokens,
		},
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   environment,
		UseCase:       uc,
		CacheGateway:  gateway,
		Middleware:    middleware.New(logger, cfg.RateLimit.RequestsPerMin),
		Registry:      registry,
		Metrics:       rec,
		MaxConcurrent: cfg.Limits.MaxConcurrent,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"sentiment-analysis/internal/cache"
	"sentiment-analysis/internal/metrics"
	"sentiment-analysis/internal/middleware"
	"sentiment-analysis/internal/model"
	"sentiment-analysis/internal/sentiment"
	"sentiment-analysis/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	uc            sentiment.UseCase
	cacheGateway  cache.Gateway
	mw            middleware.Middleware
	registry      *prometheus.Registry
	metrics       *metrics.Metrics
	maxConcurrent int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	UseCase       sentiment.UseCase
	CacheGateway  cache.Gateway
	Middleware    middleware.Middleware
	Registry      *prometheus.Registry
	Metrics       *metrics.Metrics
	MaxConcurrent int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewNop()
	}

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		uc:            cfg.UseCase,
		cacheGateway:  cfg.CacheGateway,
		mw:            cfg.Middleware,
		registry:      cfg.Registry,
		metrics:       cfg.Metrics,
		maxConcurrent: cfg.MaxConcurrent,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.uc == nil {
		return errors.New("sentiment use case is required")
	}
	if srv.cacheGateway == nil {
		return errors.New("cache gateway is required")
	}
	return nil
}

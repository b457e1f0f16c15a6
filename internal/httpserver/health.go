package httpserver

import (
	"github.com/gin-gonic/gin"

	"sentiment-analysis/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "sentiment-analysis"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports process health, cache backend reachability and concurrency configuration
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	status := "healthy"
	cacheStatus := "reachable"
	if err := srv.cacheGateway.Ping(ctx); err != nil {
		status = "degraded"
		cacheStatus = err.Error()
	}

	response.OK(c, gin.H{
		"status":         status,
		"version":        HealthVersion,
		"service":        ServiceName,
		"environment":    srv.environment,
		"cache":          srv.cacheGateway.Stats(ctx),
		"cache_backend":  cacheStatus,
		"max_concurrent": srv.maxConcurrent,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// cacheStats exposes the cache gateway's counters.
// @Summary Cache statistics
// @Description Returns backend name, entry count and hit/miss counters
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cache/stats [get]
func (srv *HTTPServer) cacheStats(c *gin.Context) {
	response.OK(c, srv.cacheGateway.Stats(c.Request.Context()))
}

// cacheClear drops every cached analysis result.
// @Summary Clear the result cache
// @Tags Cache
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /cache/clear [post]
func (srv *HTTPServer) cacheClear(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.cacheGateway.Clear(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.cacheClear: %v", err)
		response.InternalError(c, err)
		return
	}
	srv.metrics.CacheEvent("clear")
	response.OK(c, nil)
}

// Package middleware carries the HTTP cross-cutting concerns: per-client
// rate limiting, CORS and response compression.
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"sentiment-analysis/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}

// CORS allows cross-origin calls from any origin. The service sits behind
// internal gateways; origin policy is enforced there.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

// Gzip compresses responses for clients that accept it.
func (m Middleware) Gzip() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}

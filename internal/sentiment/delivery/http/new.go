package http

import (
	"github.com/gin-gonic/gin"

	"sentiment-analysis/internal/sentiment"
	"sentiment-analysis/pkg/log"
)

// Handler is the public interface for the sentiment HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc sentiment.UseCase
}

// New creates the HTTP handler for the sentiment domain.
func New(l log.Logger, uc sentiment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

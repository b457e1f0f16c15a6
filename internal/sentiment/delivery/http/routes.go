package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the sentiment endpoints onto the router group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/analyze", h.Analyze)
}

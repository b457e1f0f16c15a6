package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sentiment-analysis/pkg/response"
)

// Analyze godoc
// @Summary     Analyze sentiment of a record
// @Description Classifies whether the text targets the main keywords and, if so, its polarity. Well-formed but unanalyzable inputs still return 200 with a neutral default payload.
// @Tags        Sentiment
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Record to analyze"
// @Success     200 {object} analyzeResp
// @Failure     422 {object} response.Resp "Malformed request body"
// @Router      /analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "sentiment.http.Analyze: bind: %v", err)
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		// The use case absorbs pipeline failures; an error here is a bug.
		h.l.Errorf(ctx, "sentiment.http.Analyze: uc.Analyze: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newAnalyzeResp(output))
}

package http

import (
	"sentiment-analysis/internal/sentiment"
)

// --- Request DTOs ---

type analyzeReq struct {
	ID           string   `json:"id"           binding:"required"`
	Index        string   `json:"index"        binding:"required"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Description  string   `json:"description"`
	Type         string   `json:"type"         binding:"required"`
	MainKeywords []string `json:"main_keywords"`
}

func (r analyzeReq) toInput() sentiment.AnalyzeInput {
	return sentiment.AnalyzeInput{
		ID:           r.ID,
		Index:        r.Index,
		Title:        r.Title,
		Content:      r.Content,
		Description:  r.Description,
		Type:         r.Type,
		MainKeywords: r.MainKeywords,
	}
}

// --- Response DTOs ---

// analyzeResp is intentionally flat, not wrapped in the response envelope:
// downstream consumers read the classification fields at the top level.
type analyzeResp struct {
	ID          string       `json:"id"`
	Index       string       `json:"index"`
	Type        string       `json:"type"`
	Targeted    bool         `json:"targeted"`
	Sentiment   string       `json:"sentiment"`
	Confidence  float64      `json:"confidence"`
	Keywords    keywordsResp `json:"keywords"`
	Explanation string       `json:"explanation"`
	LogLevel    int          `json:"log_level"`
}

type keywordsResp struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

func (h *handler) newAnalyzeResp(out sentiment.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		ID:          out.ID,
		Index:       out.Index,
		Type:        out.Type,
		Targeted:    out.Analysis.Targeted,
		Sentiment:   string(out.Analysis.Sentiment),
		Confidence:  out.Analysis.Confidence,
		Keywords:    keywordsResp{Positive: out.Analysis.Keywords.Positive, Negative: out.Analysis.Keywords.Negative},
		Explanation: out.Analysis.Explanation,
		LogLevel:    out.LogLevel,
	}
}

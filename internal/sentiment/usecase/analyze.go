package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"sentiment-analysis/internal/cache"
	"sentiment-analysis/internal/model"
	"sentiment-analysis/internal/sentiment"
	"sentiment-analysis/internal/topic"
	"sentiment-analysis/pkg/llmprovider"
)

// Terminal statuses for metrics and trace events.
const (
	statusCacheHit     = "cache_hit"
	statusNoKeywords   = "no_keywords"
	statusTooShort     = "too_short"
	statusNotMentioned = "not_mentioned"
	statusLLMOk        = "llm_ok"
	statusLLMRecovered = "llm_recovered"
	statusLLMFallback  = "llm_fallback"
	statusLLMError     = "llm_error"
	statusTimeout      = "timeout"
)

// Analyze runs the targeting-and-classification pipeline for one record.
// Every failure mode degrades to a neutral result; the returned error is
// always nil so the delivery layer can keep its always-200 contract.
func (uc *implUsecase) Analyze(ctx context.Context, input sentiment.AnalyzeInput) (sentiment.AnalyzeOutput, error) {
	started := time.Now()
	traceID := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, uc.opts.RequestTimeout)
	defer cancel()

	keywords := uc.resolveKeywords(ctx, input)
	text := selectText(input)

	uc.sink.Event(ctx, "analysis.start", map[string]any{
		"trace_id":      traceID,
		"id":            input.ID,
		"index":         input.Index,
		"type":          input.Type,
		"keyword_count": len(keywords),
		"text_length":   len(text),
	})

	key := cache.Key{
		Index:        input.Index,
		MergedText:   text,
		RecordType:   input.Type,
		MainKeywords: keywords,
	}
	if cached, ok := uc.cache.Get(ctx, key); ok {
		uc.metrics.CacheEvent("hit")
		uc.finish(ctx, traceID, statusCacheHit, started, *cached)
		return *cached, nil
	}
	uc.metrics.CacheEvent("miss")

	// Queue for a pipeline slot. A request that cannot get one before the
	// deadline is terminal with a timeout result.
	if err := uc.sem.Acquire(ctx, 1); err != nil {
		output := uc.buildOutput(input, timeoutAnalysis())
		uc.finish(ctx, traceID, statusTimeout, started, output)
		return output, nil
	}
	defer uc.sem.Release(1)

	analysis, status := uc.classify(ctx, text, keywords, input.Type)
	output := uc.buildOutput(input, analysis)

	// A timeout is transient upstream slowness. Caching it would serve the
	// neutral timeout payload for the full TTL and block recovery.
	if status != statusTimeout {
		uc.cache.Set(ctx, key, output)
		uc.metrics.CacheEvent("store")
	}
	uc.finish(ctx, traceID, status, started, output)
	return output, nil
}

// resolveKeywords returns the caller's keywords, falling back to the topic
// store's defaults for the record's index. Topic lookup is best effort.
func (uc *implUsecase) resolveKeywords(ctx context.Context, input sentiment.AnalyzeInput) []string {
	if len(input.MainKeywords) > 0 {
		return input.MainKeywords
	}
	if uc.topics == nil {
		return nil
	}
	t, err := uc.topics.Get(ctx, input.Index)
	if err != nil {
		if !errors.Is(err, topic.ErrNotFound) {
			uc.l.Warnf(ctx, "sentiment.usecase.Analyze: topic lookup: %v", err)
		}
		return nil
	}
	return t.Keywords
}

// classify is the state machine: short-circuit checks first, the LLM round
// only when the text actually mentions a keyword.
func (uc *implUsecase) classify(ctx context.Context, text string, keywords []string, recordType string) (sentiment.Analysis, string) {
	if len(keywords) == 0 {
		return sentiment.Analysis{
			Sentiment:   model.SentimentNeutral,
			Keywords:    sentiment.EmptyKeywords(),
			Explanation: sentiment.ExplanationNoKeywords,
		}, statusNoKeywords
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < sentiment.MinAnalyzableLength {
		return sentiment.Analysis{
			Sentiment:   model.SentimentNeutral,
			Confidence:  sentiment.ConfidenceTooShort,
			Keywords:    sentiment.EmptyKeywords(),
			Explanation: sentiment.ExplanationTooShort,
		}, statusTooShort
	}

	if !uc.matcher.Mentions(text, keywords) {
		return sentiment.Analysis{
			Sentiment:   model.SentimentNeutral,
			Confidence:  sentiment.ConfidenceNotMentioned,
			Keywords:    sentiment.EmptyKeywords(),
			Explanation: sentiment.ExplanationNotMentioned,
		}, statusNotMentioned
	}

	resp, err := uc.llm.Generate(ctx, &llmprovider.Request{
		Prompt:      buildPrompt(uc.opts.PromptTemplate, text, keywords, recordType),
		Temperature: uc.opts.Temperature,
		MaxTokens:   uc.opts.MaxTokens,
	})
	if err != nil {
		uc.metrics.LLMCall("failure")
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return timeoutAnalysis(), statusTimeout
		}
		uc.l.Warnf(ctx, "sentiment.usecase.Analyze: llm call failed: %v", err)
		return sentiment.Analysis{
			Sentiment:   model.SentimentNeutral,
			Keywords:    sentiment.EmptyKeywords(),
			Explanation: "Lỗi LLM: " + err.Error(),
		}, statusLLMError
	}
	uc.metrics.LLMCall("success")

	outcome := parseResponse(resp.Text)
	analysis := outcome.Analysis

	// The mention check already established targeting. The LLM is trusted
	// for polarity, keywords and explanation, not for overriding that.
	analysis.Targeted = true

	switch outcome.Status {
	case sentiment.ParseOK:
		return analysis, statusLLMOk
	case sentiment.ParseRecovered:
		uc.l.Infof(ctx, "sentiment.usecase.Analyze: response repaired: %s", outcome.Reason)
		return analysis, statusLLMRecovered
	default:
		uc.l.Warnf(ctx, "sentiment.usecase.Analyze: fallback parse: %s", outcome.Reason)
		return analysis, statusLLMFallback
	}
}

func (uc *implUsecase) buildOutput(input sentiment.AnalyzeInput, analysis sentiment.Analysis) sentiment.AnalyzeOutput {
	return sentiment.AnalyzeOutput{
		ID:       input.ID,
		Index:    input.Index,
		Type:     input.Type,
		Analysis: analysis,
		LogLevel: calculateLogLevel(analysis.Sentiment, input.Type, analysis.Targeted),
	}
}

func (uc *implUsecase) finish(ctx context.Context, traceID, status string, started time.Time, output sentiment.AnalyzeOutput) {
	elapsed := time.Since(started)
	uc.metrics.ObserveRequest(status, elapsed)
	uc.sink.Event(ctx, "analysis.finish", map[string]any{
		"trace_id":   traceID,
		"status":     status,
		"duration":   elapsed.String(),
		"targeted":   output.Analysis.Targeted,
		"sentiment":  string(output.Analysis.Sentiment),
		"confidence": output.Analysis.Confidence,
		"log_level":  output.LogLevel,
	})
	uc.l.Infof(ctx, "sentiment.usecase.Analyze: id=%s status=%s sentiment=%s log_level=%d took=%s",
		output.ID, status, output.Analysis.Sentiment, output.LogLevel, elapsed)
}

func timeoutAnalysis() sentiment.Analysis {
	return sentiment.Analysis{
		Sentiment:   model.SentimentNeutral,
		Keywords:    sentiment.EmptyKeywords(),
		Explanation: sentiment.ExplanationTimeout,
	}
}

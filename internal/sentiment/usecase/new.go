package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"sentiment-analysis/internal/cache"
	"sentiment-analysis/internal/matcher"
	"sentiment-analysis/internal/metrics"
	"sentiment-analysis/internal/sentiment"
	"sentiment-analysis/internal/topic"
	"sentiment-analysis/pkg/llmprovider"
	"sentiment-analysis/pkg/log"
	"sentiment-analysis/pkg/trace"
)

// Generator is the LLM boundary the pipeline calls through. Satisfied by
// *llmprovider.Manager.
type Generator interface {
	Generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options are the pipeline tunables.
type Options struct {
	// MaxConcurrent bounds in-flight classifications. Requests over the
	// bound queue for a slot rather than failing.
	MaxConcurrent int64

	// RequestTimeout is the per-request deadline covering queueing, the
	// LLM call and parsing.
	RequestTimeout time.Duration

	// PromptTemplate overrides the built-in template when non-empty.
	PromptTemplate string

	// Temperature and MaxTokens are passed through to the provider.
	Temperature float64
	MaxTokens   int
}

const (
	defaultMaxConcurrent  = 50
	defaultRequestTimeout = 60 * time.Second
	defaultMaxTokens      = 500
)

type implUsecase struct {
	l       log.Logger
	llm     Generator
	cache   cache.Gateway
	topics  topic.Repository
	matcher *matcher.Matcher
	sink    trace.Sink
	metrics *metrics.Metrics
	sem     *semaphore.Weighted
	opts    Options
}

// New builds the analysis use case. topics may be nil when no topic store is
// configured; sink and m fall back to no-op defaults.
func New(l log.Logger, llm Generator, gateway cache.Gateway, topics topic.Repository, m *matcher.Matcher, sink trace.Sink, rec *metrics.Metrics, opts Options) sentiment.UseCase {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if m == nil {
		m = matcher.New(nil)
	}
	if sink == nil {
		sink = trace.NewNoop()
	}
	if rec == nil {
		rec = metrics.NewNop()
	}
	return &implUsecase{
		l:       l,
		llm:     llm,
		cache:   gateway,
		topics:  topics,
		matcher: m,
		sink:    sink,
		metrics: rec,
		sem:     semaphore.NewWeighted(opts.MaxConcurrent),
		opts:    opts,
	}
}

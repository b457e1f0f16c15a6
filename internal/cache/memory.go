package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"sentiment-analysis/internal/sentiment"
	"sentiment-analysis/pkg/log"
)

// memoryGateway is the default in-process backend. TTL and capacity eviction
// are delegated to the expirable LRU; hit and miss counters are kept here.
type memoryGateway struct {
	l          log.Logger
	lru        *expirable.LRU[string, sentiment.AnalyzeOutput]
	ttl        time.Duration
	maxEntries int
	hits       atomic.Uint64
	misses     atomic.Uint64
}

// NewMemory builds an in-process gateway bounded by maxEntries and ttl.
func NewMemory(l log.Logger, maxEntries int, ttl time.Duration) Gateway {
	return &memoryGateway{
		l:          l,
		lru:        expirable.NewLRU[string, sentiment.AnalyzeOutput](maxEntries, nil, ttl),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (g *memoryGateway) Get(ctx context.Context, key Key) (*sentiment.AnalyzeOutput, bool) {
	output, ok := g.lru.Get(key.Fingerprint())
	if !ok {
		g.misses.Add(1)
		return nil, false
	}
	g.hits.Add(1)
	return &output, true
}

func (g *memoryGateway) Set(ctx context.Context, key Key, output sentiment.AnalyzeOutput) {
	g.lru.Add(key.Fingerprint(), output)
}

func (g *memoryGateway) Clear(ctx context.Context) error {
	g.lru.Purge()
	g.l.Info(ctx, "cache.memory.Clear: purged all entries")
	return nil
}

func (g *memoryGateway) Stats(ctx context.Context) Stats {
	return Stats{
		Backend:    "memory",
		Size:       g.lru.Len(),
		MaxEntries: g.maxEntries,
		Hits:       g.hits.Load(),
		Misses:     g.misses.Load(),
	}
}

func (g *memoryGateway) Ping(ctx context.Context) error {
	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/valkey-io/valkey-go"

	"sentiment-analysis/internal/model"
	"sentiment-analysis/internal/sentiment"
	"sentiment-analysis/pkg/log"
)

const valkeyKeyPrefix = "sentiment:result:"

// valkeyEntry is the wire form stored in Valkey. Domain types carry no JSON
// tags, so the mapping lives here.
type valkeyEntry struct {
	ID          string   `json:"id"`
	Index       string   `json:"index"`
	Type        string   `json:"type"`
	Targeted    bool     `json:"targeted"`
	Sentiment   string   `json:"sentiment"`
	Confidence  float64  `json:"confidence"`
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	Explanation string   `json:"explanation"`
	LogLevel    int      `json:"log_level"`
}

// valkeyGateway is the external backend for multi-instance deployments.
// Capacity is left to the server's own maxmemory policy; MaxEntries in
// Stats reports 0 to signal that.
type valkeyGateway struct {
	l      log.Logger
	client valkey.Client
	ttl    time.Duration
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewValkey connects to a Valkey server and returns a gateway backed by it.
func NewValkey(l log.Logger, address, username, password string, ttl time.Duration) (Gateway, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{address},
		Username:    username,
		Password:    password,
	})
	if err != nil {
		return nil, err
	}
	return &valkeyGateway{l: l, client: client, ttl: ttl}, nil
}

func (g *valkeyGateway) Get(ctx context.Context, key Key) (*sentiment.AnalyzeOutput, bool) {
	raw, err := g.client.Do(ctx, g.client.B().Get().Key(valkeyKeyPrefix+key.Fingerprint()).Build()).AsBytes()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			g.l.Warnf(ctx, "cache.valkey.Get: %v", err)
		}
		g.misses.Add(1)
		return nil, false
	}

	var entry valkeyEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		g.l.Warnf(ctx, "cache.valkey.Get: corrupt entry: %v", err)
		g.misses.Add(1)
		return nil, false
	}

	g.hits.Add(1)
	output := sentiment.AnalyzeOutput{
		ID:    entry.ID,
		Index: entry.Index,
		Type:  entry.Type,
		Analysis: sentiment.Analysis{
			Targeted:    entry.Targeted,
			Sentiment:   model.Sentiment(entry.Sentiment),
			Confidence:  entry.Confidence,
			Keywords:    sentiment.KeywordCategories{Positive: entry.Positive, Negative: entry.Negative},
			Explanation: entry.Explanation,
		},
		LogLevel: entry.LogLevel,
	}
	return &output, true
}

func (g *valkeyGateway) Set(ctx context.Context, key Key, output sentiment.AnalyzeOutput) {
	entry := valkeyEntry{
		ID:          output.ID,
		Index:       output.Index,
		Type:        output.Type,
		Targeted:    output.Analysis.Targeted,
		Sentiment:   string(output.Analysis.Sentiment),
		Confidence:  output.Analysis.Confidence,
		Positive:    output.Analysis.Keywords.Positive,
		Negative:    output.Analysis.Keywords.Negative,
		Explanation: output.Analysis.Explanation,
		LogLevel:    output.LogLevel,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		g.l.Errorf(ctx, "cache.valkey.Set: marshal: %v", err)
		return
	}

	cmd := g.client.B().Set().Key(valkeyKeyPrefix + key.Fingerprint()).Value(valkey.BinaryString(raw)).Ex(g.ttl).Build()
	if err := g.client.Do(ctx, cmd).Error(); err != nil {
		// A write failure only costs a future recomputation.
		g.l.Warnf(ctx, "cache.valkey.Set: %v", err)
	}
}

func (g *valkeyGateway) Clear(ctx context.Context) error {
	deleted := 0
	var cursor uint64
	for {
		scan, err := g.client.Do(ctx, g.client.B().Scan().Cursor(cursor).Match(valkeyKeyPrefix+"*").Count(200).Build()).AsScanEntry()
		if err != nil {
			return err
		}
		if len(scan.Elements) > 0 {
			if err := g.client.Do(ctx, g.client.B().Del().Key(scan.Elements...).Build()).Error(); err != nil {
				return err
			}
			deleted += len(scan.Elements)
		}
		cursor = scan.Cursor
		if cursor == 0 {
			break
		}
	}
	g.l.Infof(ctx, "cache.valkey.Clear: deleted %d entries", deleted)
	return nil
}

func (g *valkeyGateway) Stats(ctx context.Context) Stats {
	size := 0
	var cursor uint64
	for {
		scan, err := g.client.Do(ctx, g.client.B().Scan().Cursor(cursor).Match(valkeyKeyPrefix+"*").Count(200).Build()).AsScanEntry()
		if err != nil {
			g.l.Warnf(ctx, "cache.valkey.Stats: %v", err)
			break
		}
		size += len(scan.Elements)
		cursor = scan.Cursor
		if cursor == 0 {
			break
		}
	}
	return Stats{
		Backend:    "valkey",
		Size:       size,
		MaxEntries: 0,
		Hits:       g.hits.Load(),
		Misses:     g.misses.Load(),
	}
}

func (g *valkeyGateway) Ping(ctx context.Context) error {
	return g.client.Do(ctx, g.client.B().Ping().Build()).Error()
}

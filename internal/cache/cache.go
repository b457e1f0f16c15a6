// Package cache is the gateway in front of the classification pipeline. It
// maps a deterministic fingerprint of the semantically relevant request
// fields to a previously computed result, with TTL expiry and a capacity
// bound. Entries are immutable once written; concurrent writers follow
// last-write-wins per key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"sentiment-analysis/internal/sentiment"
)

// Key identifies one logical analysis request.
type Key struct {
	Index        string
	MergedText   string
	RecordType   string
	MainKeywords []string
}

// fingerprintPayload is the canonical serialization the fingerprint hashes.
// Field order is fixed; keywords are lowercased and sorted so the same
// logical request always produces the same key.
type fingerprintPayload struct {
	Index        string   `json:"index"`
	MergedText   string   `json:"merged_text"`
	RecordType   string   `json:"type"`
	MainKeywords []string `json:"main_keywords"`
}

// Fingerprint returns the hex-encoded content hash of the key.
func (k Key) Fingerprint() string {
	keywords := make([]string, len(k.MainKeywords))
	for i, kw := range k.MainKeywords {
		keywords[i] = strings.ToLower(kw)
	}
	sort.Strings(keywords)

	payload, _ := json.Marshal(fingerprintPayload{
		Index:        k.Index,
		MergedText:   k.MergedText,
		RecordType:   k.RecordType,
		MainKeywords: keywords,
	})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Stats describes the gateway's current state.
type Stats struct {
	Backend    string `json:"backend"`
	Size       int    `json:"size"`
	MaxEntries int    `json:"max_entries"`
	Hits       uint64 `json:"hits"`
	Misses     uint64 `json:"misses"`
}

// Gateway stores and retrieves finalized analysis results.
type Gateway interface {
	Get(ctx context.Context, key Key) (*sentiment.AnalyzeOutput, bool)
	Set(ctx context.Context, key Key, output sentiment.AnalyzeOutput)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) Stats

	// Ping reports backend reachability for health checks.
	Ping(ctx context.Context) error
}

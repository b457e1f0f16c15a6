package usecase

import (
	"context"

	"sentiment-analysis/internal/cache"
	"sentiment-analysis/internal/sentiment"
	"sentiment-analysis/internal/topic"
	"sentiment-analysis/pkg/llmprovider"
)

// mockLogger discards everything. Used by tests across this package.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

// fakeGenerator counts calls and returns a canned response or error. When
// failures is positive only the first N calls error, then it recovers.
type fakeGenerator struct {
	calls    int
	failures int
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	if f.err != nil && (f.failures == 0 || f.calls <= f.failures) {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.response, ProviderName: "fake", ModelName: "fake-model"}, nil
}

// fakeGateway is an unbounded map-backed cache for pipeline tests.
type fakeGateway struct {
	entries map[string]sentiment.AnalyzeOutput
	sets    int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{entries: map[string]sentiment.AnalyzeOutput{}}
}

func (f *fakeGateway) Get(ctx context.Context, key cache.Key) (*sentiment.AnalyzeOutput, bool) {
	out, ok := f.entries[key.Fingerprint()]
	if !ok {
		return nil, false
	}
	return &out, true
}

func (f *fakeGateway) Set(ctx context.Context, key cache.Key, output sentiment.AnalyzeOutput) {
	f.sets++
	f.entries[key.Fingerprint()] = output
}

func (f *fakeGateway) Clear(ctx context.Context) error {
	f.entries = map[string]sentiment.AnalyzeOutput{}
	return nil
}

func (f *fakeGateway) Stats(ctx context.Context) cache.Stats {
	return cache.Stats{Backend: "fake", Size: len(f.entries)}
}

func (f *fakeGateway) Ping(ctx context.Context) error { return nil }

// fakeTopics serves a fixed topic table.
type fakeTopics struct {
	topics map[string]topic.Topic
}

func (f *fakeTopics) Get(ctx context.Context, id string) (*topic.Topic, error) {
	t, ok := f.topics[id]
	if !ok {
		return nil, topic.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTopics) Upsert(ctx context.Context, t topic.Topic) error {
	f.topics[t.ID] = t
	return nil
}

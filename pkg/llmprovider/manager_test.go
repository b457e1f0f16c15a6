package llmprovider

import (
	"context"
	"errors"
	"testing"
)

type stubLogger struct{}

func (stubLogger) Debug(ctx context.Context, args ...any)                  {}
func (stubLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) Info(ctx context.Context, args ...any)                   {}
func (stubLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (stubLogger) Warn(ctx context.Context, args ...any)                   {}
func (stubLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (stubLogger) Error(ctx context.Context, args ...any)                  {}
func (stubLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) Fatal(ctx context.Context, args ...any)                  {}
func (stubLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) DPanic(ctx context.Context, args ...any)                 {}
func (stubLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (stubLogger) Panic(ctx context.Context, args ...any)                  {}
func (stubLogger) Panicf(ctx context.Context, format string, args ...any)  {}

type stubProvider struct {
	name     string
	calls    int
	failures int
	err      error
}

func (s *stubProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	s.calls++
	if s.calls <= s.failures {
		if s.err != nil {
			return nil, s.err
		}
		return nil, errors.New("transient failure")
	}
	return &Response{Text: "ok", ProviderName: s.name, ModelName: "stub-model"}, nil
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Model() string { return "stub-model" }

func TestManagerGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("no providers configured", func(t *testing.T) {
		m := NewManager(nil, &Config{}, stubLogger{})
		if _, err := m.Generate(ctx, &Request{Prompt: "p"}); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("err = %v, want ErrNoProvidersConfigured", err)
		}
	})

	t.Run("first provider succeeds", func(t *testing.T) {
		first := &stubProvider{name: "first"}
		second := &stubProvider{name: "second"}
		m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true, RetryAttempts: 1}, stubLogger{})

		resp, err := m.Generate(ctx, &Request{Prompt: "p"})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if resp.ProviderName != "first" || second.calls != 0 {
			t.Errorf("expected first provider to serve; second called %d times", second.calls)
		}
	})

	t.Run("fallback to next provider", func(t *testing.T) {
		first := &stubProvider{name: "first", failures: 99}
		second := &stubProvider{name: "second"}
		m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true, RetryAttempts: 2}, stubLogger{})

		resp, err := m.Generate(ctx, &Request{Prompt: "p"})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if resp.ProviderName != "second" {
			t.Errorf("served by %q, want second", resp.ProviderName)
		}
		if first.calls != 2 {
			t.Errorf("first provider attempts = %d, want 2", first.calls)
		}
	})

	t.Run("fallback disabled stops at first provider", func(t *testing.T) {
		first := &stubProvider{name: "first", failures: 99}
		second := &stubProvider{name: "second"}
		m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: false, RetryAttempts: 1}, stubLogger{})

		if _, err := m.Generate(ctx, &Request{Prompt: "p"}); !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("err = %v, want ErrAllProvidersFailed", err)
		}
		if second.calls != 0 {
			t.Errorf("second provider called %d times with fallback disabled", second.calls)
		}
	})

	t.Run("retry recovers a transient failure", func(t *testing.T) {
		flaky := &stubProvider{name: "flaky", failures: 1}
		m := NewManager([]Provider{flaky}, &Config{RetryAttempts: 3}, stubLogger{})

		resp, err := m.Generate(ctx, &Request{Prompt: "p"})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if resp.Text != "ok" || flaky.calls != 2 {
			t.Errorf("calls = %d, want 2 (one failure, one success)", flaky.calls)
		}
	})

	t.Run("all providers exhausted", func(t *testing.T) {
		first := &stubProvider{name: "first", failures: 99, err: errors.New("boom")}
		m := NewManager([]Provider{first}, &Config{FallbackEnabled: true, RetryAttempts: 2}, stubLogger{})

		_, err := m.Generate(ctx, &Request{Prompt: "p"})
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("err = %v, want ErrAllProvidersFailed", err)
		}
	})

	t.Run("canceled context aborts the chain", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		first := &stubProvider{name: "first"}
		m := NewManager([]Provider{first}, &Config{FallbackEnabled: true, RetryAttempts: 1}, stubLogger{})

		if _, err := m.Generate(cctx, &Request{Prompt: "p"}); err == nil {
			t.Error("expected error from canceled context")
		}
		if first.calls != 0 {
			t.Errorf("provider called %d times after cancellation", first.calls)
		}
	})
}

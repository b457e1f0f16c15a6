// Package trace provides a capability-optional sink for pipeline trace
// events. The sink is a construction-time dependency: wiring a no-op keeps
// control flow identical whether tracing is enabled or not.
package trace

import (
	"context"

	"sentiment-analysis/pkg/log"
)

// Sink receives named trace events with arbitrary fields.
type Sink interface {
	Event(ctx context.Context, name string, fields map[string]any)
}

type noopSink struct{}

// NewNoop returns a Sink that discards all events.
func NewNoop() Sink {
	return noopSink{}
}

func (noopSink) Event(ctx context.Context, name string, fields map[string]any) {}

type logSink struct {
	l log.Logger
}

// NewLogSink returns a Sink that writes events to the service logger.
func NewLogSink(l log.Logger) Sink {
	return &logSink{l: l}
}

func (s *logSink) Event(ctx context.Context, name string, fields map[string]any) {
	args := make([]any, 0, len(fields)*2+1)
	args = append(args, "trace: "+name)
	for k, v := range fields {
		args = append(args, k, v)
	}
	s.l.Info(ctx, args...)
}

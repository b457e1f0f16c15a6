// Package topic stores per-topic metadata, most importantly the default
// keyword list used when a caller submits a record without main_keywords.
// Topic lookup is best effort: a missing topic or an unreachable store never
// fails an analysis request.
package topic

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no topic exists for the given ID.
var ErrNotFound = errors.New("topic not found")

// Topic is one monitored subject with its default main keywords.
type Topic struct {
	ID       string
	Name     string
	Keywords []string
}

// Repository looks up topic metadata.
type Repository interface {
	Get(ctx context.Context, id string) (*Topic, error)
	Upsert(ctx context.Context, t Topic) error
}

package topic

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedRepository is a read-through cache in front of another repository.
// Negative results are not cached so a freshly inserted topic is visible on
// the next lookup.
type cachedRepository struct {
	next Repository
	lru  *expirable.LRU[string, Topic]
}

// NewCached wraps next with an expiring read-through cache.
func NewCached(next Repository, maxEntries int, ttl time.Duration) Repository {
	return &cachedRepository{
		next: next,
		lru:  expirable.NewLRU[string, Topic](maxEntries, nil, ttl),
	}
}

func (r *cachedRepository) Get(ctx context.Context, id string) (*Topic, error) {
	if t, ok := r.lru.Get(id); ok {
		return &t, nil
	}
	t, err := r.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.lru.Add(id, *t)
	return t, nil
}

func (r *cachedRepository) Upsert(ctx context.Context, t Topic) error {
	if err := r.next.Upsert(ctx, t); err != nil {
		return err
	}
	r.lru.Add(t.ID, t)
	return nil
}

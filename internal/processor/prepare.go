package processor

import (
	"context"
	"errors"

	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

// EachEvent calls fn for every event in order. Events failing with rpc.ErrEntityNotFound are
// skipped and returned, any other error aborts the batch.
func EachEvent[E any](ctx context.Context, events []Wrangled[E],
	fn func(ctx context.Context, w Wrangled[E]) error) ([]*store.RawEvent, error) {
	var notFound []*store.RawEvent

	for _, w := range events {
		if err := fn(ctx, w); err != nil {
			if errors.Is(err, rpc.ErrEntityNotFound) {
				notFound = append(notFound, w.Raw)
				continue
			}
			return nil, err
		}
	}

	return notFound, nil
}

// ReadCache memoizes authoritative reads within one batch. Every read of a batch targets the
// latest block, so repeated events of one entity share a read.
type ReadCache[K comparable, V any] struct {
	read   func(ctx context.Context, key K) (V, error)
	values map[K]V
}

func NewReadCache[K comparable, V any](read func(ctx context.Context, key K) (V, error)) *ReadCache[K, V] {
	return &ReadCache[K, V]{read: read, values: make(map[K]V)}
}

func (c *ReadCache[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := c.values[key]; ok {
		return v, nil
	}

	v, err := c.read(ctx, key)
	if err != nil {
		return v, err
	}
	c.values[key] = v

	return v, nil
}

package cart

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoProvider reports a store lookup on a context that never had one.
var ErrNoProvider = errors.New("cart store used without provider")

type storeKey struct{}

// WithStore returns a context that provides store.
func WithStore(ctx context.Context, store *Store) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, storeKey{}, store)
}

// FromContext returns the store installed by WithStore. It panics when no
// store was provided; callers that reach it without one are miswired.
func FromContext(ctx context.Context) *Store {
	if ctx != nil {
		if store, ok := ctx.Value(storeKey{}).(*Store); ok && store != nil {
			return store
		}
	}
	panic(fmt.Errorf("cart.FromContext: %w", ErrNoProvider))
}

package assessment

import (
	"context"
	"errors"
)

// ErrStoreNotInitialized means a store was requested from a context that never had one attached.
var ErrStoreNotInitialized = errors.New("assessment store is not initialized: attach one with assessment.NewContext")

type storeKey struct{}

// NewContext returns a copy of ctx carrying the store.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the store attached with NewContext.
func FromContext(ctx context.Context) (*Store, error) {
	if ctx == nil {
		return nil, ErrStoreNotInitialized
	}
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrStoreNotInitialized
	}
	return s, nil
}

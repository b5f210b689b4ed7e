// Package kvstore defines the key-value persistence contract the tracker is
// built over, with in-memory, Redis, and Postgres implementations. Values are
// opaque text; callers serialize whole collections as JSON under fixed keys.
package kvstore

import "context"

// Store is the storage adapter contract. Implementations must return
// sentinel.ErrNotFound from Get when the key does not exist; Delete of a
// missing key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

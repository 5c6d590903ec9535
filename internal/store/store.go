// Package store provides the durable string-keyed value store the
// session layer persists into, with SQLite and in-memory backends.
package store

import "context"

// Store is a passive durability layer: no business logic, string keys,
// opaque byte values. Get reports an absent key as (nil, nil), never as
// an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Update runs fn against a transactional view of the store. Writes
	// made through tx become visible together or not at all.
	Update(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

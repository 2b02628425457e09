// Package store provides the byte-level key-value storage every collection
// is persisted through. Drivers exist for local files, Redis and PostgreSQL;
// all of them share last-write-wins semantics with no cross-process
// coordination.
package store

import "context"

// Store reads and writes opaque payloads under logical collection keys.
// Get returns (nil, nil) when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
}

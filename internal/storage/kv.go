// Package storage is the persistence layer: a durable key-value store
// backed by sqlite, plus JSON snapshot helpers used by the account and
// diary stores. Every mutation re-persists a whole collection under its
// key; there is no incremental append.
package storage

import "context"

// KV is durable key-value storage for named blobs.
//
// Contract: Get returns (nil, nil) when the key is absent. Set overwrites
// any previous value. Delete is idempotent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

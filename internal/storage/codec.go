package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/haeun-dev/maumdiary/internal/common"
)

// ErrCorruptSnapshot marks a stored blob that could not be decoded.
// Load still returns a usable zero value alongside it; callers are
// expected to log and continue with an empty collection.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Load reads and decodes the blob stored under key. An absent key yields
// the zero value of T with a nil error. A blob that fails to decode also
// yields the zero value, with an error wrapping ErrCorruptSnapshot so the
// caller can decide how loudly to complain.
func Load[T any](ctx context.Context, kv KV, key string) (T, error) {
	var v T

	raw, err := kv.Get(ctx, key)
	if err != nil {
		return v, fmt.Errorf("load %q: %w: %w", key, common.ErrPersistence, err)
	}
	if raw == nil {
		return v, nil
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %q: %w: %w", key, ErrCorruptSnapshot, err)
	}
	return v, nil
}

// Save encodes v and overwrites the blob under key with the full snapshot.
func Save[T any](ctx context.Context, kv KV, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %q: %w: %w", key, common.ErrPersistence, err)
	}
	return nil
}

// Clear removes the blob under key, leaving it absent.
func Clear(ctx context.Context, kv KV, key string) error {
	if err := kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("clear %q: %w: %w", key, common.ErrPersistence, err)
	}
	return nil
}

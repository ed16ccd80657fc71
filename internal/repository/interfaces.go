package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested key or row does not exist.
var ErrNotFound = errors.New("not found")

// KVStore is the key/value persistence primitive. Values are opaque strings;
// callers own their serialization.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

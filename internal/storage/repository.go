package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// KeyValueStore is the durable string store the snapshot collection lives in.
// Get returns ErrNotFound for absent keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

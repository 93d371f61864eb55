package ports

import "context"

// PersistentStore is a durable key/value store surviving process restarts.
// Set must have committed when it returns nil.
type PersistentStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

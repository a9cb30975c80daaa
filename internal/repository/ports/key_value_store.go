package ports

import "context"

// KeyValueStore is the server-side equivalent of a browser's local storage:
// string values grouped under a namespace per user.
type KeyValueStore interface {
	Get(ctx context.Context, namespace, key string) (string, bool, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace string, keys ...string) error
}

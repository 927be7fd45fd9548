package repository

import "context"

// ClientStateRepository defines the interface for terminal-local key/value
// state. Set must commit before returning; subsequent reads see the value.
type ClientStateRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

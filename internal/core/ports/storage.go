package ports

import "context"

// Storage is a small persistent key/value store, the client-side analogue of
// browser local storage. GetItem reports false when the key is absent.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Credentials is the single session-token slot owned by the API client.
type Credentials interface {
	// SetToken normalizes and stores token. It reports false, and leaves the
	// current token untouched, when token is empty or cleans down to nothing.
	SetToken(ctx context.Context, token string) bool
	ClearToken(ctx context.Context)
	Token() (string, bool)
}

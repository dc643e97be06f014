package identity

import "context"

// Provider resolves the locally cached identity of the current user.
// It is injected into anything that needs the user id (rather than
// read from ambient process state) so callers can be tested with a
// fixed identity.
type Provider interface {
	// UserID returns the cached user id. Returns ErrNotFound when no
	// identity is stored; callers treat that as recoverable, never as
	// a crash.
	UserID(ctx context.Context) (string, error)
}

// Static is a Provider with a fixed id, for tests and one-off commands.
type Static string

func (s Static) UserID(ctx context.Context) (string, error) {
	if s == "" {
		return "", ErrNotFound
	}
	return string(s), nil
}

package identity

import "errors"

// ErrNotFound indicates no user identity is stored locally. The user
// must log in before any user-scoped call can be made.
var ErrNotFound = errors.New("no user identity stored; run `skillpath login <user-id>`")

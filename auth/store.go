package auth

import "context"

// DefaultNamespace is the session namespace used when none is configured,
// and the namespace the outcome flag is always written to.
const DefaultNamespace = "default"

// SessionStore is the namespaced key/value session state the authenticator
// writes into. Writes are last-write-wins per key within a namespace.
//
// The store is expected to be request-scoped: serializing concurrent writes
// within one session's scope is the implementation's responsibility.
type SessionStore interface {
	Set(ctx context.Context, namespace, key string, value any) error
}

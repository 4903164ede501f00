package auth

import "context"

// Record is the entity returned by a user lookup. It must expose the stored
// credential hash plus zero or more named attributes addressable by string
// key. The record is owned by the lookup collaborator; the authenticator
// only reads it.
type Record interface {
	// Attribute returns the named attribute and whether it exists.
	Attribute(name string) (any, bool)
}

// ModelHandle is a resolved model that can run named finder methods.
type ModelHandle interface {
	// Invoke runs the named finder with the (sanitized) username. It must
	// return (nil, nil) when no record matches; "not found" is not an
	// error condition here. It returns [ErrMethodNotFound] when the model
	// does not expose the method. Invoke may perform blocking I/O; timeout
	// and cancellation policy belong to the implementation and the
	// supplied context.
	Invoke(ctx context.Context, method, username string) (Record, error)
}

// UserLookup abstracts "find a user record by login identifier" behind
// named models, so the authenticator never depends on a concrete data
// layer. Implementations must return [ErrModelNotFound] from Resolve when
// the model name is unknown.
type UserLookup interface {
	Resolve(model string) (ModelHandle, error)
}

// Package auth provides an extensible credential-authentication contract and
// a concrete adapter that verifies credentials against a pluggable user
// lookup, guards the login action against cross-site request forgery via
// referer inspection, and projects a configured subset of the authenticated
// record's attributes into a namespaced session store.
//
// The entry point is the [Authenticator] interface; [ModelAuthenticator] is
// the shipped strategy. Persistence and session storage are delegated to
// caller-provided implementations of [UserLookup] and [SessionStore]; a
// thread-safe in-memory reference implementation lives in auth/inmemory and
// a Redis-backed session store in auth/redistore.
package auth

import "errors"

// Sentinel errors returned by [UserLookup] implementations. Compare with
// [errors.Is].
var (
	// ErrModelNotFound is returned by [UserLookup.Resolve] when no model is
	// registered under the requested name.
	ErrModelNotFound = errors.New("auth: model not found")

	// ErrMethodNotFound is returned by [ModelHandle.Invoke] when the model
	// does not expose the requested find method. The authenticator reports
	// this as a configuration error, distinct from a credential failure.
	ErrMethodNotFound = errors.New("auth: find method not found in model")
)

// Messages surfaced through [Base.LastError]. Credential failures share one
// generic message so a caller cannot distinguish an unknown username from a
// wrong password.
const (
	msgEmptyCredentials   = "Username and password are required."
	msgPolicyDenied       = "Access denied due to security policy. Please try again later."
	msgInvalidCredentials = "Invalid username or password. Please try again."
)

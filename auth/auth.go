package auth

import (
	"context"
	"log/slog"
)

// Authenticator is the narrow capability every authentication strategy must
// satisfy: a deterministic boolean check plus the most recent failure
// message. Strategies are independent implementing types sharing [Base];
// swapping one for another must not change this outward contract.
type Authenticator interface {
	// Authenticate verifies the supplied credentials within the given
	// request context. It runs the strategy's check exactly once and
	// returns its result unchanged: no retries, no caching of prior
	// results. It never panics; on failure the reason is available from
	// LastError.
	Authenticate(ctx context.Context, req RequestInfo, username, password string) bool

	// LastError returns the human-readable reason for the most recent
	// failure. The slot is overwritten on every failure and left untouched
	// on success.
	LastError() string
}

// Base carries the state shared by all authentication strategies: the
// session flag key, the record attribute holding the credential hash, the
// single-slot last error, and the logger.
//
// A Base (and any strategy embedding it) serves one authentication attempt
// at a time; it is not safe for concurrent use. Use one instance per
// request scope.
type Base struct {
	flagKey   string
	passField string
	logger    *slog.Logger
	lastErr   string
}

// SetError records msg as the last failure reason, overwriting any previous
// value. It is a single slot, not a log.
func (b *Base) SetError(msg string) { b.lastErr = msg }

// LastError returns the most recently recorded failure reason.
func (b *Base) LastError() string { return b.lastErr }

// SetFlagKey changes the session key under which the check outcome flag is
// written.
func (b *Base) SetFlagKey(key string) { b.flagKey = key }

// SetPasswordField changes the record attribute read as the stored
// credential hash.
func (b *Base) SetPasswordField(name string) { b.passField = name }

// Log forwards a message and structured attributes to the configured
// logger. Logging is best-effort: with no logger configured the entry is
// dropped, and a logging failure never aborts authentication.
func (b *Base) Log(msg string, args ...any) {
	if b.logger == nil {
		return
	}
	b.logger.Warn(msg, args...)
}

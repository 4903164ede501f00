package auth

import "strings"

// RefererGuard decides whether an authentication attempt originates from a
// trusted request context by checking that the declared referer contains
// the request's own host.
//
// This is a coarse anti-forgery heuristic, not a cryptographic guarantee,
// so it fails closed: a missing referer (or a missing host) is treated
// exactly like a mismatched one, and callers are told only that policy
// denied the attempt while the full detail goes to the log.
type RefererGuard struct{}

// Allow reports whether req passes the referer policy: both the referer and
// the host must be present, and the referer must contain the host as a
// substring.
func (RefererGuard) Allow(req RequestInfo) bool {
	if req.Referer == "" || req.Host == "" {
		return false
	}
	return strings.Contains(req.Referer, req.Host)
}

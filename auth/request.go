package auth

import (
	"net"
	"net/http"
	"strings"
)

// RequestInfo is the read-only slice of an incoming request the
// authenticator needs: the declared origin, the serving host, and the
// diagnostic fields logged on a policy denial. Missing values are empty
// strings. Passing the value explicitly (rather than reading ambient
// request state) keeps checks deterministic and testable.
type RequestInfo struct {
	// Referer is the raw value of the request's Referer header.
	Referer string
	// Host is the host the request was addressed to.
	Host string
	// RemoteAddr is the client address, used only for logging.
	RemoteAddr string
	// UserAgent is the client's User-Agent header, used only for logging.
	UserAgent string
}

// RequestInfoFromHTTP extracts a [RequestInfo] from an *http.Request.
// The remote address honours X-Forwarded-For and X-Real-IP (common in
// proxied deployments) before falling back to the connection address.
func RequestInfoFromHTTP(r *http.Request) RequestInfo {
	return RequestInfo{
		Referer:    r.Referer(),
		Host:       r.Host,
		RemoteAddr: clientAddr(r),
		UserAgent:  r.UserAgent(),
	}
}

// clientAddr resolves the client address, preferring proxy headers.
func clientAddr(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First entry is the originating client.
		if idx := strings.IndexByte(xff, ','); idx > 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	// RemoteAddr is usually host:port, but bare addresses (notably IPv6)
	// must survive untouched.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

package auth

import "github.com/microcosm-cc/bluemonday"

// strictPolicy strips every element and HTML-escapes the surviving text.
// Policies are safe for concurrent Sanitize calls.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeUsername strips markup from username and HTML-encodes what
// remains, before the value reaches the lookup or the session.
//
// Only the username is ever sanitized: passwords must stay byte-exact for
// hashing.
func SanitizeUsername(username string) string {
	return strictPolicy.Sanitize(username)
}

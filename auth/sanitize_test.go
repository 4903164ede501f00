package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrystivens/go-kumbia-auth/auth"
)

func TestSanitizeUsername(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "alice", "alice"},
		{"markup stripped", "<b>alice</b>", "alice"},
		{"script removed entirely", "<script>alert(1)</script>bob", "bob"},
		{"entities encoded", "a&b", "a&amp;b"},
		{"angle brackets encoded", "1 < 2", "1 &lt; 2"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.SanitizeUsername(tt.in))
		})
	}
}

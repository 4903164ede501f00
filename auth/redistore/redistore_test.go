package redistore_test

import (
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrystivens/go-kumbia-auth/auth/redistore"
)

func TestNew_RequiresClient(t *testing.T) {
	_, err := redistore.New(redistore.Config{})
	assert.True(t, errors.Is(err, redistore.ErrNilClient))
}

func TestStore_KeyShape(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	t.Cleanup(func() { _ = client.Close() })

	s, err := redistore.New(redistore.Config{Client: client})
	require.NoError(t, err)
	assert.Equal(t, "auth:session:default:id", s.Key("default", "id"))

	custom, err := redistore.New(redistore.Config{Client: client, KeyPrefix: "app:"})
	require.NoError(t, err)
	assert.Equal(t, "app:account:role", custom.Key("account", "role"))
}

package inmemory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrystivens/go-kumbia-auth/auth"
	"github.com/henrystivens/go-kumbia-auth/auth/inmemory"
)

func TestSessionStore_LastWriteWins(t *testing.T) {
	s := inmemory.NewSessionStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "default", "id", 1))
	require.NoError(t, s.Set(ctx, "default", "id", 2))

	v, ok := s.Get("default", "id")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, s.Len("default"))
}

func TestSessionStore_NamespaceIsolation(t *testing.T) {
	s := inmemory.NewSessionStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", "k", "in-a"))
	require.NoError(t, s.Set(ctx, "b", "k", "in-b"))

	va, _ := s.Get("a", "k")
	vb, _ := s.Get("b", "k")
	assert.Equal(t, "in-a", va)
	assert.Equal(t, "in-b", vb)

	_, ok := s.Get("c", "k")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len("c"))
}

func TestLookup_ResolveAndInvoke(t *testing.T) {
	l := inmemory.NewLookup()
	l.Register("users", "find_by_username",
		func(_ context.Context, username string) (auth.Record, error) {
			if username == "alice" {
				return inmemory.Record{"id": 7}, nil
			}
			return nil, nil
		})

	h, err := l.Resolve("users")
	require.NoError(t, err)

	rec, err := h.Invoke(context.Background(), "find_by_username", "alice")
	require.NoError(t, err)
	require.NotNil(t, rec)
	id, ok := rec.Attribute("id")
	require.True(t, ok)
	assert.Equal(t, 7, id)

	// No match is (nil, nil), not an error.
	rec, err = h.Invoke(context.Background(), "find_by_username", "nobody")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLookup_UnknownModel(t *testing.T) {
	l := inmemory.NewLookup()
	_, err := l.Resolve("ghosts")
	assert.True(t, errors.Is(err, auth.ErrModelNotFound))
}

func TestLookup_UnknownMethod(t *testing.T) {
	l := inmemory.NewLookup()
	l.Register("users", "find_by_username",
		func(context.Context, string) (auth.Record, error) { return nil, nil })

	h, err := l.Resolve("users")
	require.NoError(t, err)

	_, err = h.Invoke(context.Background(), "find_by_email", "alice")
	assert.True(t, errors.Is(err, auth.ErrMethodNotFound))
	assert.Contains(t, err.Error(), "find_by_email")
}

func TestRecord_Attribute(t *testing.T) {
	r := inmemory.Record{"id": 7, "role": "admin"}

	v, ok := r.Attribute("role")
	require.True(t, ok)
	assert.Equal(t, "admin", v)

	_, ok = r.Attribute("email")
	assert.False(t, ok)
}

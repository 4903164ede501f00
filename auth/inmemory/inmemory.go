// Package inmemory provides thread-safe in-memory implementations of
// [auth.SessionStore] and [auth.UserLookup].
//
// It is intended for tests and prototyping. Do not use it in production.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/henrystivens/go-kumbia-auth/auth"
)

var (
	_ auth.SessionStore = (*SessionStore)(nil)
	_ auth.UserLookup   = (*Lookup)(nil)
)

// SessionStore is a thread-safe in-memory implementation of
// [auth.SessionStore]. Writes are last-write-wins per key within a
// namespace.
type SessionStore struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]any
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{namespaces: make(map[string]map[string]any)}
}

// Set stores value under namespace/key, replacing any previous value.
func (s *SessionStore) Set(_ context.Context, namespace, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[namespace]
	if !ok {
		ns = make(map[string]any)
		s.namespaces[namespace] = ns
	}
	ns[key] = value
	return nil
}

// Get returns the value stored under namespace/key and whether it exists.
func (s *SessionStore) Get(namespace, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.namespaces[namespace][key]
	return v, ok
}

// Len returns the number of keys stored in namespace.
func (s *SessionStore) Len(namespace string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.namespaces[namespace])
}

// Record is a map-backed [auth.Record].
type Record map[string]any

// Attribute returns the named attribute and whether it exists.
func (r Record) Attribute(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// FinderFunc locates a record by (sanitized) username. Return (nil, nil)
// when no record matches.
type FinderFunc func(ctx context.Context, username string) (auth.Record, error)

// Lookup is an in-memory [auth.UserLookup]: a registry of named models,
// each exposing named finder functions.
type Lookup struct {
	mu     sync.RWMutex
	models map[string]map[string]FinderFunc
}

// NewLookup creates an empty Lookup.
func NewLookup() *Lookup {
	return &Lookup{models: make(map[string]map[string]FinderFunc)}
}

// Register adds (or replaces) the finder fn as method on model, creating
// the model on first use.
func (l *Lookup) Register(model, method string, fn FinderFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.models[model]
	if !ok {
		m = make(map[string]FinderFunc)
		l.models[model] = m
	}
	m[method] = fn
}

// Resolve returns a handle for the named model, or [auth.ErrModelNotFound].
func (l *Lookup) Resolve(model string) (auth.ModelHandle, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	methods, ok := l.models[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", auth.ErrModelNotFound, model)
	}
	// Copy so later Register calls cannot race with an in-flight handle.
	snapshot := make(map[string]FinderFunc, len(methods))
	for name, fn := range methods {
		snapshot[name] = fn
	}
	return &modelHandle{model: model, methods: snapshot}, nil
}

type modelHandle struct {
	model   string
	methods map[string]FinderFunc
}

// Invoke runs the named finder. Returns [auth.ErrMethodNotFound] when the
// model does not expose the method.
func (h *modelHandle) Invoke(ctx context.Context, method, username string) (auth.Record, error) {
	fn, ok := h.methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", auth.ErrMethodNotFound, h.model, method)
	}
	return fn(ctx, username)
}

package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher. New credentials
// are hashed with the default driver; [Manager.CheckWithDetect] resolves the
// driver from the hash prefix, which keeps old hashes verifiable after the
// default algorithm changes.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered before any hashing operation is dispatched.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with the bcrypt and Argon2id drivers
// pre-registered at their recommended settings. The default driver is
// [DriverArgon2id].
func NewDefaultManager() (*Manager, error) {
	bc, err := NewBcryptHasher(DefaultBcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing: default bcrypt driver: %w", err)
	}
	ar, err := NewArgon2idHasher(DefaultArgon2Options())
	if err != nil {
		return nil, fmt.Errorf("hashing: default argon2id driver: %w", err)
	}
	m := NewManager(DriverArgon2id)
	_ = m.Register(DriverBcrypt, bc)
	_ = m.Register(DriverArgon2id, ar)
	return m, nil
}

// Register adds or replaces a named driver. Safe to call while other
// goroutines are using the Manager.
func (m *Manager) Register(name DriverName, h Hasher) error {
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the registered hasher for name, or [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Make]. The named
// driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered", ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// Make hashes password with the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash using the default driver.
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password against hash, resolving the driver from
// the hash prefix. Use this when hashes from multiple algorithms coexist,
// e.g. during a bcrypt-to-Argon2id migration.
//
// Returns [ErrInvalidHash] when the format is unrecognised and
// [ErrDriverNotFound] when the detected driver is not registered.
func (m *Manager) CheckWithDetect(password, hash string) (bool, error) {
	name, ok := DetectDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}
	h, err := m.Driver(name)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be re-hashed: true when it was
// produced by a non-default driver, or by the default driver with
// parameters that differ from its current configuration.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	if detected != def {
		return true, nil
	}
	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}

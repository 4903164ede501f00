// Package hashing provides one-way credential hashing for the auth adapters.
//
// The central abstraction is the [Hasher] interface. Two drivers ship with
// this package: [BcryptHasher] and [Argon2idHasher]. Both emit
// self-describing hash strings (Modular Crypt Format and PHC format
// respectively), so the producing algorithm and its parameters can always be
// recovered from the stored hash itself.
//
// The [Manager] is a driver registry and dispatcher. New credentials are
// hashed with the default driver; verification can resolve the driver from
// the hash prefix via [Manager.CheckWithDetect], which keeps old hashes
// verifiable after the default algorithm is upgraded.
package hashing

import "strings"

// DriverName identifies a hashing algorithm driver.
type DriverName string

const (
	// DriverBcrypt selects the bcrypt driver.
	DriverBcrypt DriverName = "bcrypt"
	// DriverArgon2id selects the Argon2id driver, the recommended default
	// for new credentials.
	DriverArgon2id DriverName = "argon2id"
)

// Hasher is the capability satisfied by all credential-hashing drivers.
// Implementations must be safe for concurrent use.
type Hasher interface {
	// Make hashes a plaintext credential and returns the encoded hash
	// string. A fresh random salt is generated on every call, so two calls
	// with the same input produce different outputs.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash, in
	// constant time. Returns (false, nil) on a clean mismatch and
	// (false, err) when the hash string is malformed or was produced by a
	// different algorithm.
	Check(password, hash string) (bool, error)

	// NeedsRehash reports whether the hash was produced with parameters
	// weaker than, or different from, the driver's current configuration.
	// Callers should re-hash on the next successful verification when this
	// returns true.
	NeedsRehash(hash string) (bool, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// DetectDriver inspects an encoded hash and reports which driver produced
// it, based on the hash prefix. The second return value is false when the
// format is not recognised.
func DetectDriver(hash string) (DriverName, bool) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		return DriverArgon2id, true
	// bcrypt hashes start with $2a$, $2b$, or $2y$
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return DriverBcrypt, true
	default:
		return "", false
	}
}

package hashing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the default bcrypt work factor. At cost 12 a single
// hash takes roughly a quarter of a second on current server hardware.
const DefaultBcryptCost = 12

// BcryptHasher hashes credentials with bcrypt. The 128-bit salt is generated
// and stored inside the hash string, so callers never manage salts.
//
// Bcrypt truncates inputs longer than 72 bytes; prefer [Argon2idHasher] for
// new systems.
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a BcryptHasher with the given work factor.
// A cost of 0 selects [DefaultBcryptCost]. Returns [ErrInvalidOption] when
// cost is outside [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Driver returns [DriverBcrypt].
func (h *BcryptHasher) Driver() DriverName { return DriverBcrypt }

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Make hashes password and returns a Modular Crypt Format string
// (e.g. "$2a$12$...").
func (h *BcryptHasher) Make(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return string(hash), nil
}

// Check verifies password against a bcrypt hash. A clean mismatch returns
// (false, nil); a structurally invalid or non-bcrypt hash returns an error.
func (h *BcryptHasher) Check(password, hash string) (bool, error) {
	if d, ok := DetectDriver(hash); !ok || d != DriverBcrypt {
		return false, fmt.Errorf("%w: not a bcrypt hash", ErrAlgorithmMismatch)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
}

// NeedsRehash reports whether the hash was produced with a cost different
// from the hasher's current configuration.
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	if d, ok := DetectDriver(hash); !ok || d != DriverBcrypt {
		return false, fmt.Errorf("%w: not a bcrypt hash", ErrAlgorithmMismatch)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		// x/crypto rejects the $2y$ minor version produced by PHP; fall back
		// to parsing the cost segment directly.
		if cost, err = bcryptCostFromHash(hash); err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
		}
	}
	return cost != h.cost, nil
}

// bcryptCostFromHash parses the cost segment without x/crypto, kept for the
// rare hash variants bcrypt.Cost rejects ($2y$ produced by PHP).
func bcryptCostFromHash(hash string) (int, error) {
	// $2y$12$... → segments ["", "2y", "12", "..."]
	parts := strings.SplitN(hash, "$", 4)
	if len(parts) != 4 {
		return 0, ErrInvalidHash
	}
	return strconv.Atoi(parts[2])
}

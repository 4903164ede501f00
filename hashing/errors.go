package hashing

import "errors"

// Sentinel errors returned by hashing operations. Compare with [errors.Is].
var (
	// ErrInvalidHash is returned when a hash string cannot be parsed:
	// unrecognised format, missing segments, or invalid encoding.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned by a driver constructor when a parameter
	// falls outside its allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrDriverNotFound is returned when the requested driver has not been
	// registered with the [Manager].
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrNilHasher is returned by [Manager.Register] when a nil Hasher is
	// supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrAlgorithmMismatch is returned by Check or NeedsRehash when the hash
	// was produced by a different algorithm than the driver being asked.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")
)

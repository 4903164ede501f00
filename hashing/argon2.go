package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Recommended Argon2id parameters. These exceed the OWASP ASVS Level 2
// minimums (m >= 19 MiB, t >= 2, p >= 1).
const (
	// DefaultArgon2Memory is the memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024
	// DefaultArgon2Time is the number of passes over memory.
	DefaultArgon2Time uint32 = 3
	// DefaultArgon2Threads is the degree of parallelism.
	DefaultArgon2Threads uint8 = 2
	// DefaultArgon2KeyLen is the derived key length in bytes.
	DefaultArgon2KeyLen uint32 = 32
	// DefaultArgon2SaltLen is the random salt length in bytes.
	DefaultArgon2SaltLen uint32 = 16
)

// Argon2Options configures an [Argon2idHasher]. All parameters are encoded
// into the output hash string, so changing them only affects newly produced
// hashes; old hashes remain verifiable.
type Argon2Options struct {
	// Memory is the memory cost in KiB. Minimum 8*Threads.
	Memory uint32
	// Time is the number of iterations. Minimum 1.
	Time uint32
	// Threads is the degree of parallelism. Minimum 1.
	Threads uint8
	// KeyLen is the derived key length in bytes.
	KeyLen uint32
	// SaltLen is the random salt length in bytes. Minimum 8.
	SaltLen uint32
}

// DefaultArgon2Options returns the recommended parameter set.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  DefaultArgon2Memory,
		Time:    DefaultArgon2Time,
		Threads: DefaultArgon2Threads,
		KeyLen:  DefaultArgon2KeyLen,
		SaltLen: DefaultArgon2SaltLen,
	}
}

func validateArgon2Options(opts Argon2Options) error {
	if opts.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be >= 1, got %d", ErrInvalidOption, opts.Time)
	}
	if opts.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be >= 1, got %d", ErrInvalidOption, opts.Threads)
	}
	if opts.Memory < 8*uint32(opts.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be >= 8 KiB per thread",
			ErrInvalidOption, opts.Memory)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: argon2 salt_len must be >= 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	if opts.KeyLen < 4 {
		return fmt.Errorf("%w: argon2 key_len must be >= 4, got %d", ErrInvalidOption, opts.KeyLen)
	}
	return nil
}

// Argon2idHasher hashes credentials with Argon2id (RFC 9106), the
// recommended algorithm for new systems. Output is a PHC-format string:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<key_b64>
//
// Argon2idHasher is immutable after construction and safe for concurrent use.
type Argon2idHasher struct {
	opts Argon2Options
}

// NewArgon2idHasher constructs an Argon2idHasher. Use
// [DefaultArgon2Options] for the recommended defaults.
func NewArgon2idHasher(opts Argon2Options) (*Argon2idHasher, error) {
	if err := validateArgon2Options(opts); err != nil {
		return nil, err
	}
	return &Argon2idHasher{opts: opts}, nil
}

// Driver returns [DriverArgon2id].
func (h *Argon2idHasher) Driver() DriverName { return DriverArgon2id }

// Options returns the current parameter set.
func (h *Argon2idHasher) Options() Argon2Options { return h.opts }

// Make hashes password with a fresh random salt and returns the PHC string.
func (h *Argon2idHasher) Make(password string) (string, error) {
	salt := make([]byte, h.opts.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("hashing: argon2: generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt,
		h.opts.Time, h.opts.Memory, h.opts.Threads, h.opts.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.opts.Memory, h.opts.Time, h.opts.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Check verifies password against an Argon2id PHC hash. The parameters are
// read from the hash string itself, so verification still works after the
// hasher's options have changed. Comparison is constant-time.
func (h *Argon2idHasher) Check(password, hash string) (bool, error) {
	p, err := decodeArgon2id(hash)
	if err != nil {
		return false, err
	}
	computed := argon2.IDKey([]byte(password), p.salt,
		p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(computed, p.key) == 1, nil
}

// NeedsRehash reports whether any parameter encoded in hash differs from the
// hasher's current configuration.
func (h *Argon2idHasher) NeedsRehash(hash string) (bool, error) {
	p, err := decodeArgon2id(hash)
	if err != nil {
		return false, err
	}
	return p.memory != h.opts.Memory ||
		p.time != h.opts.Time ||
		p.threads != h.opts.Threads ||
		uint32(len(p.key)) != h.opts.KeyLen, nil
}

// argon2Params holds the values decoded from a PHC hash string.
type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

// decodeArgon2id parses "$argon2id$v=19$m=...,t=...,p=...$<salt>$<key>".
func decodeArgon2id(encoded string) (*argon2Params, error) {
	if d, ok := DetectDriver(encoded); ok && d != DriverArgon2id {
		return nil, fmt.Errorf("%w: hash is %q, not argon2id", ErrAlgorithmMismatch, d)
	}
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected 5-segment PHC string", ErrInvalidHash)
	}
	if parts[1] != string(DriverArgon2id) {
		return nil, fmt.Errorf("%w: hash is %q, not argon2id", ErrAlgorithmMismatch, parts[1])
	}

	version, err := strconv.ParseUint(strings.TrimPrefix(parts[2], "v="), 10, 32)
	if err != nil || !strings.HasPrefix(parts[2], "v=") {
		return nil, fmt.Errorf("%w: malformed version segment %q", ErrInvalidHash, parts[2])
	}
	if version != uint64(argon2.Version) {
		return nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidHash, version)
	}

	var p argon2Params
	for _, kv := range strings.Split(parts[3], ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("%w: malformed parameter %q", ErrInvalidHash, kv)
		}
		v, err := strconv.ParseUint(kv[eq+1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric value in %q", ErrInvalidHash, kv)
		}
		switch kv[:eq] {
		case "m":
			p.memory = uint32(v)
		case "t":
			p.time = uint32(v)
		case "p":
			p.threads = uint8(v)
		}
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return nil, fmt.Errorf("%w: missing m/t/p in %q", ErrInvalidHash, parts[3])
	}

	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64", ErrInvalidHash)
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("%w: invalid key base64", ErrInvalidHash)
	}
	// Enforce the same floors as validateArgon2Options: x/crypto panics on a
	// zero-length derived key, so an under-length segment must never reach
	// argon2.IDKey.
	if len(p.salt) < 8 {
		return nil, fmt.Errorf("%w: salt shorter than 8 bytes", ErrInvalidHash)
	}
	if len(p.key) < 4 {
		return nil, fmt.Errorf("%w: key shorter than 4 bytes", ErrInvalidHash)
	}
	return &p, nil
}

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Params configures the argon2id key derivation.
type Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams follows the OWASP recommendation for interactive logins.
var DefaultParams = &Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// ErrMismatch is returned when a password does not match the stored hash.
var ErrMismatch = errors.New("password does not match")

const encodedPrefix = "$argon2id$"

// Hasher derives and verifies argon2id password hashes in PHC string format.
// Secrets are opaque everywhere else in the application; only the store
// adapters call into this package.
type Hasher struct {
	params *Params
}

// NewHasher creates a hasher with the given params, falling back to defaults.
func NewHasher(params *Params) *Hasher {
	if params == nil {
		params = DefaultParams
	}
	return &Hasher{params: params}
}

// Hash derives an encoded argon2id hash from a plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Key := base64.RawStdEncoding.EncodeToString(key)

	// PHC format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	encoded := fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		encodedPrefix, argon2.Version, h.params.Memory, h.params.Iterations, h.params.Parallelism, b64Salt, b64Key)

	return encoded, nil
}

// Compare verifies a plaintext password against an encoded hash using the
// parameters recorded in the hash itself.
func (h *Hasher) Compare(encoded, password string) error {
	params, salt, key, err := decode(encoded)
	if err != nil {
		return err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	if subtle.ConstantTimeCompare(key, candidate) == 1 {
		return nil
	}
	return ErrMismatch
}

// IsEncoded reports whether s already carries an argon2id PHC hash. The store
// adapters use this to avoid re-hashing on round-tripped entities.
func IsEncoded(s string) bool {
	return strings.HasPrefix(s, encodedPrefix)
}

func decode(encoded string) (*Params, []byte, []byte, error) {
	vals := strings.Split(encoded, "$")
	if len(vals) != 6 || vals[1] != "argon2id" {
		return nil, nil, nil, errors.New("invalid hash format")
	}

	var version int
	if _, err := fmt.Sscanf(vals[2], "v=%d", &version); err != nil {
		return nil, nil, nil, err
	}
	if version != argon2.Version {
		return nil, nil, nil, errors.New("incompatible argon2 version")
	}

	params := &Params{}
	if _, err := fmt.Sscanf(vals[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return nil, nil, nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(vals[4])
	if err != nil {
		return nil, nil, nil, err
	}
	params.SaltLength = uint32(len(salt))

	key, err := base64.RawStdEncoding.DecodeString(vals[5])
	if err != nil {
		return nil, nil, nil, err
	}
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}

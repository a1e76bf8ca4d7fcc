// Package cryptox holds the key-derivation primitives used to check a
// password against a stored credential: the KDF parameter set, PBKDF2
// derivation over a selectable HMAC hash, and digest comparison.
package cryptox

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"hash"
	"strings"

	"github.com/dmitrijs2005/credcheck/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

// Algorithm names the hash underlying the PBKDF2 pseudorandom function.
type Algorithm string

const (
	SHA512 Algorithm = "sha512"
	SHA256 Algorithm = "sha256"
	SHA1   Algorithm = "sha1"
)

const (
	DefaultAlgorithm  = SHA512
	DefaultIterations = 10000
)

var hashes = map[Algorithm]func() hash.Hash{
	SHA512: sha512.New,
	SHA256: sha256.New,
	SHA1:   sha1.New,
}

// ParseAlgorithm maps a case-insensitive name ("sha512", "SHA-512") to an
// Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", ""))
	if _, ok := hashes[a]; !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedAlgorithm, name)
	}
	return a, nil
}

// Size returns the natural digest size of the algorithm in bytes, or 0 if
// the algorithm is unknown.
func (a Algorithm) Size() int {
	h, ok := hashes[a]
	if !ok {
		return 0
	}
	return h().Size()
}

// Params is the KDF parameter set handed to the verifier.
//
// KeyLength of zero means "as long as the expected digest"; the verifier
// resolves it per call via ForDigest.
type Params struct {
	Algorithm  Algorithm
	Iterations int
	KeyLength  int
}

// DefaultParams returns PBKDF2-HMAC-SHA512 with 10000 iterations and the
// output length taken from the stored hash.
func DefaultParams() Params {
	return Params{Algorithm: DefaultAlgorithm, Iterations: DefaultIterations}
}

// ForDigest returns a copy of p whose KeyLength is set to the length of
// expected when p leaves it unspecified.
func (p Params) ForDigest(expected []byte) Params {
	if p.KeyLength == 0 {
		p.KeyLength = len(expected)
	}
	return p
}

// Validate reports parameters PBKDF2 cannot run with.
func (p Params) Validate() error {
	if _, ok := hashes[p.Algorithm]; !ok {
		return fmt.Errorf("%w: %q", common.ErrUnsupportedAlgorithm, p.Algorithm)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", p.Iterations)
	}
	if p.KeyLength < 1 {
		return fmt.Errorf("key length must be >= 1, got %d", p.KeyLength)
	}
	return nil
}

// DeriveFunc derives a digest from a password and salt. Derive is the
// production implementation; tests substitute counting stubs.
type DeriveFunc func(password, salt []byte, p Params) ([]byte, error)

// Derive runs PBKDF2 with the given parameters. Any failure, including a
// panic inside the hash implementation, is returned wrapped in
// common.ErrDerivationFailure.
func Derive(password, salt []byte, p Params) (key []byte, err error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrDerivationFailure, err)
	}

	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("%w: %v", common.ErrDerivationFailure, r)
		}
	}()

	return pbkdf2.Key(password, salt, p.Iterations, p.KeyLength, hashes[p.Algorithm]), nil
}

// Equal compares two digests over their full length in constant time.
// Digests of different length never match.
func Equal(computed, expected []byte) bool {
	return subtle.ConstantTimeCompare(computed, expected) == 1
}

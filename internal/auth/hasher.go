// Package auth implements the credential hasher, the token
// issuer/verifier and the service that orchestrates registration and
// login on top of the account repository.
package auth

import (
	"errors"
	"fmt"

	"github.com/alumnihub/alumnihub/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies salted bcrypt credential hashes.
//
// bcrypt generates a fresh random salt on every call, so two hashes of
// the same secret never match byte for byte, and its comparison runs in
// constant time with respect to the secret.
type Hasher struct {
	cost int
}

// NewHasher creates a hasher with the given work factor. Out-of-range
// values fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing credential: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether secret matches the stored hash.
//
// A stored hash bcrypt cannot parse is reported as
// common.ErrCorruptCredential rather than a mismatch, so data corruption
// is never masked as a failed login.
func (h *Hasher) Verify(secret, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret))

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrCorruptCredential, err)
	}
}

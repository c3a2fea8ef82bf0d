// Package auth implements credential hashing for the store.
package auth

import (
	"encoding/hex"
	"regexp"

	"golang.org/x/crypto/sha3"

	"storefront/internal/domain"
)

const minPasswordLen = 8

var (
	hasDigit  = regexp.MustCompile(`\d`)
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
)

// Hasher derives SHA3-256 digests. The digest is deterministic, so
// verification is recompute-and-compare against the stored value; no salt or
// other per-credential state is kept.
type Hasher struct{}

func NewHasher() Hasher {
	return Hasher{}
}

// Hash rejects passwords shorter than 8 characters or missing a digit or a
// letter, and returns the hex digest otherwise.
func (Hasher) Hash(password string) (string, error) {
	if len(password) < minPasswordLen ||
		!hasDigit.MatchString(password) ||
		!hasLetter.MatchString(password) {
		return "", domain.ErrWeakPassword
	}
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Check never applies the complexity policy, so digests recorded before a
// policy change remain verifiable.
func (Hasher) Check(password, digest string) bool {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]) == digest
}

package integrity

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/iov-one/whitelist/errors"
)

// NormalizeHash returns the canonical representation of a hex encoded hash.
func NormalizeHash(hash string) string {
	return strings.ToLower(strings.TrimSpace(hash))
}

// SHA256Hex returns the lower case hex encoded SHA-256 digest of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// VerifyMetadataHash ensures that claimedHash is the SHA-256 digest of the
// payload string. Letter case and surrounding whitespace of the claimed
// hash are ignored. Digests are compared in constant time.
func VerifyMetadataHash(payloadAsString, claimedHash string) error {
	if payloadAsString == "" {
		return errors.Wrap(errors.ErrIntegrity, "payload is empty")
	}
	claimed := NormalizeHash(claimedHash)
	if claimed == "" {
		return errors.Wrap(errors.ErrIntegrity, "hash is empty")
	}
	if !equalHash(SHA256Hex(payloadAsString), claimed) {
		return errors.Wrap(errors.ErrIntegrity, "payload hash mismatch")
	}
	return nil
}

func equalHash(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

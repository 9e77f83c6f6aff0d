package weavetest

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/iov-one/whitelist/crypto"
)

// Key is a private key together with the PEM encoding of its public part.
type Key struct {
	crypto.Signer
	PEM string
}

// NewKey returns a new random P-256 key.
func NewKey(t testing.TB) *Key {
	t.Helper()
	return NewKeyFrom(t, crypto.GenerateP256())
}

// NewKeyFrom wraps given signer.
func NewKeyFrom(t testing.TB, signer crypto.Signer) *Key {
	t.Helper()
	encoded, err := crypto.MarshalPEM(signer.PublicKey())
	if err != nil {
		t.Fatalf("cannot encode public key: %s", err)
	}
	return &Key{Signer: signer, PEM: encoded}
}

// SuperAdmins returns n new keys and their PEM encodings.
func SuperAdmins(t testing.TB, n int) ([]*Key, []string) {
	t.Helper()
	keys := make([]*Key, n)
	pems := make([]string, n)
	for i := range keys {
		keys[i] = NewKey(t)
		pems[i] = keys[i].PEM
	}
	return keys, pems
}

// SHA256Hex returns the hex encoded SHA-256 digest of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

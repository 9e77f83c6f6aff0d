package crypto

import (
	"crypto/x509"

	"golang.org/x/crypto/ed25519"
)

type ed25519PublicKey ed25519.PublicKey

var _ PublicKey = ed25519PublicKey(nil)

// Verify verifies the signature was created with this message and public key
func (p ed25519PublicKey) Verify(message, signature []byte) bool {
	if len(p) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), message, signature)
}

func (ed25519PublicKey) Algorithm() Algorithm {
	return Ed25519
}

func (p ed25519PublicKey) PKIX() ([]byte, error) {
	return x509.MarshalPKIXPublicKey(ed25519.PublicKey(p))
}

type ed25519PrivateKey ed25519.PrivateKey

var _ Signer = ed25519PrivateKey(nil)

// GenerateEd25519 returns a random new Ed25519 private key.
func GenerateEd25519() Signer {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return ed25519PrivateKey(priv)
}

// Ed25519FromSeed will deterministically generate a private key from a given
// seed. Use if you have a strong source of external randomness, or for
// deterministic keys in test cases.
func Ed25519FromSeed(seed []byte) Signer {
	return ed25519PrivateKey(ed25519.NewKeyFromSeed(seed))
}

func (p ed25519PrivateKey) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(ed25519.PrivateKey(p), message), nil
}

func (p ed25519PrivateKey) PublicKey() PublicKey {
	pub := ed25519.PrivateKey(p).Public().(ed25519.PublicKey)
	return ed25519PublicKey(pub)
}

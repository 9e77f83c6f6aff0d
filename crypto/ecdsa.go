package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"math/big"
)

const p256RawSignatureSize = 64

type p256PublicKey struct {
	key *ecdsa.PublicKey
}

var _ PublicKey = (*p256PublicKey)(nil)

// Verify accepts both ASN.1 DER and raw r||s encoded signatures.
func (p *p256PublicKey) Verify(message, signature []byte) bool {
	if len(signature) == 0 {
		return false
	}
	digest := sha256.Sum256(message)
	if ecdsa.VerifyASN1(p.key, digest[:], signature) {
		return true
	}
	if len(signature) != p256RawSignatureSize {
		return false
	}
	r := new(big.Int).SetBytes(signature[:p256RawSignatureSize/2])
	s := new(big.Int).SetBytes(signature[p256RawSignatureSize/2:])
	return ecdsa.Verify(p.key, digest[:], r, s)
}

func (p *p256PublicKey) Algorithm() Algorithm {
	return P256
}

func (p *p256PublicKey) PKIX() ([]byte, error) {
	return x509.MarshalPKIXPublicKey(p.key)
}

type p256PrivateKey struct {
	key *ecdsa.PrivateKey
}

var _ Signer = (*p256PrivateKey)(nil)

// GenerateP256 returns a random new P-256 private key.
func GenerateP256() Signer {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		panic(err)
	}
	return &p256PrivateKey{key: key}
}

// Sign returns an ASN.1 DER encoded signature of the message digest.
func (p *p256PrivateKey) Sign(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	return ecdsa.SignASN1(rand.Reader, p.key, digest[:])
}

func (p *p256PrivateKey) PublicKey() PublicKey {
	return &p256PublicKey{key: &p.key.PublicKey}
}

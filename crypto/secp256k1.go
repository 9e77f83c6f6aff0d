package crypto

import (
	"crypto/sha256"
	"crypto/x509/pkix"
	"encoding/asn1"

	"github.com/btcsuite/btcd/btcec"
)

type secp256k1PublicKey struct {
	key *btcec.PublicKey
}

var _ PublicKey = (*secp256k1PublicKey)(nil)

// Verify expects an ASN.1 DER encoded signature of the message digest.
func (p *secp256k1PublicKey) Verify(message, signature []byte) bool {
	sig, err := btcec.ParseDERSignature(signature, btcec.S256())
	if err != nil {
		return false
	}
	digest := sha256.Sum256(message)
	return sig.Verify(digest[:], p.key)
}

func (p *secp256k1PublicKey) Algorithm() Algorithm {
	return Secp256k1
}

func (p *secp256k1PublicKey) PKIX() ([]byte, error) {
	params, err := asn1.Marshal(oidNamedCurveSecp256k1)
	if err != nil {
		return nil, err
	}
	point := p.key.SerializeUncompressed()
	return asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{
			Algorithm:  oidPublicKeyECDSA,
			Parameters: asn1.RawValue{FullBytes: params},
		},
		PublicKey: asn1.BitString{Bytes: point, BitLength: 8 * len(point)},
	})
}

type secp256k1PrivateKey struct {
	key *btcec.PrivateKey
}

var _ Signer = (*secp256k1PrivateKey)(nil)

// GenerateSecp256k1 returns a random new secp256k1 private key.
func GenerateSecp256k1() Signer {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		panic(err)
	}
	return &secp256k1PrivateKey{key: key}
}

func (p *secp256k1PrivateKey) Sign(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	sig, err := p.key.Sign(digest[:])
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

func (p *secp256k1PrivateKey) PublicKey() PublicKey {
	return &secp256k1PublicKey{key: p.key.PubKey()}
}

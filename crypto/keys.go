package crypto

import (
	"crypto/ecdsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"strconv"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/whitelist/errors"
	"golang.org/x/crypto/ed25519"
)

// Algorithm names the signature scheme of a key.
type Algorithm string

const (
	P256      Algorithm = "ecdsa-p256"
	Ed25519   Algorithm = "ed25519"
	Secp256k1 Algorithm = "ecdsa-secp256k1"
)

const pemPublicKeyType = "PUBLIC KEY"

// PublicKey represents a key that signatures can be verified against.
type PublicKey interface {
	// Verify returns true if signature is a valid signature of the
	// message created with the private counterpart of this key.
	Verify(message, signature []byte) bool
	Algorithm() Algorithm
	// PKIX returns the DER encoded SubjectPublicKeyInfo of this key.
	PKIX() ([]byte, error)
}

// Signer is the functionality we use from a private key.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() PublicKey
}

var (
	oidPublicKeyECDSA      = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidNamedCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// subjectPublicKeyInfo mirrors the PKIX structure. The standard library
// refuses curves it does not implement, so secp256k1 keys are unpacked
// here before being handed over to btcec.
type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

// ParsePublicKey decodes a PEM encoded public key. Input that is not PEM is
// parsed as a DER encoded SubjectPublicKeyInfo.
func ParsePublicKey(raw []byte) (PublicKey, error) {
	if len(raw) == 0 {
		return nil, errors.Wrap(errors.ErrDecode, "empty public key")
	}
	der := raw
	if block, _ := pem.Decode(raw); block != nil {
		if block.Type != pemPublicKeyType {
			return nil, errors.Wrapf(errors.ErrDecode, "unexpected pem block %q", block.Type)
		}
		der = block.Bytes
	}

	var info subjectPublicKeyInfo
	if rest, err := asn1.Unmarshal(der, &info); err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "malformed public key")
	} else if len(rest) != 0 {
		return nil, errors.Wrap(errors.ErrDecode, "trailing data after public key")
	}
	if info.Algorithm.Algorithm.Equal(oidPublicKeyECDSA) {
		var curve asn1.ObjectIdentifier
		if _, err := asn1.Unmarshal(info.Algorithm.Parameters.FullBytes, &curve); err == nil && curve.Equal(oidNamedCurveSecp256k1) {
			pub, err := btcec.ParsePubKey(info.PublicKey.RightAlign(), btcec.S256())
			if err != nil {
				return nil, errors.Wrap(errors.ErrDecode, "malformed secp256k1 point")
			}
			return &secp256k1PublicKey{key: pub}, nil
		}
	}

	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "unsupported public key")
	}
	switch k := key.(type) {
	case *ecdsa.PublicKey:
		if k.Curve.Params().Name != "P-256" {
			return nil, errors.Wrapf(errors.ErrDecode, "unsupported curve %s", k.Curve.Params().Name)
		}
		return &p256PublicKey{key: k}, nil
	case ed25519.PublicKey:
		return ed25519PublicKey(k), nil
	default:
		return nil, errors.Wrapf(errors.ErrDecode, "unsupported key type %T", key)
	}
}

// ParsePublicKeys decodes an ordered list of PEM encoded keys. The first
// failure is returned as a field error carrying the key index.
func ParsePublicKeys(pems []string) ([]PublicKey, error) {
	keys := make([]PublicKey, 0, len(pems))
	for i, p := range pems {
		key, err := ParsePublicKey([]byte(p))
		if err != nil {
			return nil, errors.Field(strconv.Itoa(i), err, "cannot parse public key")
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// MarshalPEM returns the PEM encoding of given public key.
func MarshalPEM(key PublicKey) (string, error) {
	der, err := key.PKIX()
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemPublicKeyType, Bytes: der})), nil
}

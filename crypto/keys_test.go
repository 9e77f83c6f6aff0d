package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/pem"
	"testing"

	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/weavetest/assert"
	"github.com/stretchr/testify/require"
)

func TestSigning(t *testing.T) {
	cases := map[string]struct {
		signer Signer
		algo   Algorithm
	}{
		"p256":      {signer: GenerateP256(), algo: P256},
		"ed25519":   {signer: GenerateEd25519(), algo: Ed25519},
		"secp256k1": {signer: GenerateSecp256k1(), algo: Secp256k1},
	}

	msg := []byte(`["1f0e"]`)
	msg2 := []byte(`["1f0f"]`)

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			public := tc.signer.PublicKey()
			assert.Equal(t, tc.algo, public.Algorithm())

			sig, err := tc.signer.Sign(msg)
			assert.Nil(t, err)
			sig2, err := tc.signer.Sign(msg2)
			assert.Nil(t, err)

			if !public.Verify(msg, sig) {
				t.Fatal("cannot verify a message signed with this public key")
			}
			if public.Verify(msg, sig2) {
				t.Fatal("verified message signature of the wrong message")
			}
			if public.Verify(msg, nil) {
				t.Fatal("verified a nil signature of a message")
			}
			if public.Verify(msg, []byte{1, 2, 3}) {
				t.Fatal("verified a garbage signature of a message")
			}

			other := cases["p256"].signer
			if tc.algo == P256 {
				other = GenerateP256()
			}
			if other.PublicKey().Verify(msg, sig) {
				t.Fatal("verified a signature with a foreign key")
			}
		})
	}
}

func TestPEMRoundTrip(t *testing.T) {
	for _, signer := range []Signer{GenerateP256(), GenerateEd25519(), GenerateSecp256k1()} {
		encoded, err := MarshalPEM(signer.PublicKey())
		require.NoError(t, err)

		parsed, err := ParsePublicKey([]byte(encoded))
		require.NoError(t, err)
		require.Equal(t, signer.PublicKey().Algorithm(), parsed.Algorithm())

		sig, err := signer.Sign([]byte("container"))
		require.NoError(t, err)
		require.True(t, parsed.Verify([]byte("container"), sig))

		// DER without the PEM armour is accepted as well.
		block, _ := pem.Decode([]byte(encoded))
		fromDER, err := ParsePublicKey(block.Bytes)
		require.NoError(t, err)
		require.True(t, fromDER.Verify([]byte("container"), sig))
	}
}

func TestP256RawSignature(t *testing.T) {
	signer := GenerateP256().(*p256PrivateKey)
	msg := []byte("raw")
	digest := sha256.Sum256(msg)
	r, s, err := ecdsa.Sign(rand.Reader, signer.key, digest[:])
	require.NoError(t, err)

	raw := make([]byte, 64)
	r.FillBytes(raw[:32])
	s.FillBytes(raw[32:])
	require.True(t, signer.PublicKey().Verify(msg, raw))

	raw[10] ^= 0xff
	require.False(t, signer.PublicKey().Verify(msg, raw))
}

func TestParsePublicKeyErrors(t *testing.T) {
	cases := map[string][]byte{
		"empty":         nil,
		"garbage":       []byte("not a key"),
		"wrong pem":     pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1}}),
		"malformed der": pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: []byte{0x30, 0x01}}),
	}
	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := ParsePublicKey(raw)
			if !errors.ErrDecode.Is(err) {
				t.Fatalf("want decode error, got %+v", err)
			}
		})
	}
}

func TestParsePublicKeys(t *testing.T) {
	good, err := MarshalPEM(GenerateP256().PublicKey())
	require.NoError(t, err)

	keys, err := ParsePublicKeys([]string{good, good})
	require.NoError(t, err)
	require.Len(t, keys, 2)

	_, err = ParsePublicKeys([]string{good, "bad"})
	assert.FieldError(t, err, "1", errors.ErrDecode)
}

package integrity

import (
	"strings"
	"testing"

	"github.com/iov-one/whitelist/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestVerifyMetadataHash(t *testing.T) {
	payload := `{"address":"0xabc","blockchain":"ETH"}`
	hash := SHA256Hex(payload)

	cases := map[string]struct {
		payload string
		hash    string
		wantErr *errors.Error
	}{
		"matching hash":   {payload: payload, hash: hash},
		"upper case hash": {payload: payload, hash: strings.ToUpper(hash)},
		"padded hash":     {payload: payload, hash: "  " + hash + "\n"},
		"other payload":   {payload: payload + " ", hash: hash, wantErr: errors.ErrIntegrity},
		"truncated hash":  {payload: payload, hash: hash[:62], wantErr: errors.ErrIntegrity},
		"empty hash":      {payload: payload, hash: "", wantErr: errors.ErrIntegrity},
		"blank hash":      {payload: payload, hash: "   ", wantErr: errors.ErrIntegrity},
		"empty payload":   {payload: "", hash: SHA256Hex(""), wantErr: errors.ErrIntegrity},
		"not hex encoded": {payload: payload, hash: strings.Repeat("z", 64), wantErr: errors.ErrIntegrity},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := VerifyMetadataHash(tc.payload, tc.hash)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestVerifyMetadataHashProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("digest of the payload always verifies", prop.ForAll(
		func(payload string) bool {
			return VerifyMetadataHash(payload, SHA256Hex(payload)) == nil
		},
		gen.AnyString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.Property("representation of the hash does not matter", prop.ForAll(
		func(payload string, pad string) bool {
			h := pad + strings.ToUpper(SHA256Hex(payload)) + pad
			return VerifyMetadataHash(payload, h) == nil
		},
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
		gen.OneConstOf("", " ", "\t", "\n"),
	))

	properties.Property("digest of another payload never verifies", prop.ForAll(
		func(a, b string) bool {
			if a == b {
				return true
			}
			return errors.ErrIntegrity.Is(VerifyMetadataHash(a, SHA256Hex(b)))
		},
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

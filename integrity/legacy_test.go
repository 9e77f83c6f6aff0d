package integrity

import (
	"regexp"
	"strings"
	"testing"

	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dropColor = RemovePattern("color", regexp.MustCompile(`,"color":"[^"]*"`))
	dropSize  = RemovePattern("size", regexp.MustCompile(`,"size":[0-9]+`))
	testChain = []LegacyStrategy{dropColor, dropSize, Chain("color and size", dropColor, dropSize)}
)

func signedBy(hashes ...string) []envelope.Signature {
	return []envelope.Signature{
		{UserID: "u1", Hashes: []string{"00"}},
		{UserID: "u2", Hashes: hashes},
	}
}

func TestVerifyHashInSignedHashes(t *testing.T) {
	const (
		current  = `{"name":"x","color":"red","size":3}`
		noColor  = `{"name":"x","size":3}`
		noSize   = `{"name":"x","color":"red"}`
		original = `{"name":"x"}`
	)

	cases := map[string]struct {
		claimed  string
		payload  string
		sigs     []envelope.Signature
		wantHash string
		wantErr  *errors.Error
	}{
		"claimed hash is signed": {
			claimed:  SHA256Hex(current),
			payload:  current,
			sigs:     signedBy(SHA256Hex(current)),
			wantHash: SHA256Hex(current),
		},
		"claimed hash is normalized": {
			claimed:  " " + strings.ToUpper(SHA256Hex(current)),
			payload:  current,
			sigs:     signedBy(SHA256Hex(current)),
			wantHash: SHA256Hex(current),
		},
		"signature hash in upper case": {
			claimed:  SHA256Hex(current),
			payload:  current,
			sigs:     signedBy(strings.ToUpper(SHA256Hex(current))),
			wantHash: SHA256Hex(current),
		},
		"first strategy": {
			claimed:  SHA256Hex(current),
			payload:  current,
			sigs:     signedBy(SHA256Hex(noColor)),
			wantHash: SHA256Hex(noColor),
		},
		"second strategy": {
			claimed:  SHA256Hex(current),
			payload:  current,
			sigs:     signedBy(SHA256Hex(noSize)),
			wantHash: SHA256Hex(noSize),
		},
		"combined strategy": {
			claimed:  SHA256Hex(current),
			payload:  current,
			sigs:     signedBy(SHA256Hex(original)),
			wantHash: SHA256Hex(original),
		},
		"earlier strategy wins": {
			claimed:  SHA256Hex(current),
			payload:  current,
			sigs:     signedBy(SHA256Hex(original), SHA256Hex(noSize)),
			wantHash: SHA256Hex(noSize),
		},
		"no strategy matches": {
			claimed: SHA256Hex(current),
			payload: current,
			sigs:    signedBy("ff"),
			wantErr: errors.ErrIntegrity,
		},
		"no signatures": {
			claimed: SHA256Hex(current),
			payload: current,
			wantErr: errors.ErrIntegrity,
		},
		"empty claimed hash is never covered": {
			claimed: "",
			payload: original,
			sigs:    []envelope.Signature{{UserID: "u1", Hashes: []string{""}}},
			wantErr: errors.ErrIntegrity,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			hash, err := VerifyHashInSignedHashes(tc.claimed, tc.payload, tc.sigs, testChain)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %q error, got %+v", tc.wantErr, err)
				}
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantHash, hash)
		})
	}
}

func TestLegacyCandidatesAreDeduplicated(t *testing.T) {
	var calls []string
	counting := func(name string, fn func(string) string) LegacyStrategy {
		return LegacyStrategy{Name: name, Transform: func(p string) string {
			calls = append(calls, name)
			return fn(p)
		}}
	}
	identity := func(p string) string { return p }
	strategies := []LegacyStrategy{
		counting("noop", identity),
		counting("same", identity),
	}

	_, err := VerifyHashInSignedHashes("aa", "payload", signedBy("bb"), strategies)
	require.True(t, errors.ErrIntegrity.Is(err))
	assert.Equal(t, []string{"noop", "same"}, calls)
	assert.NotContains(t, err.Error(), SHA256Hex("payload"))
	assert.Contains(t, err.Error(), "0 legacy variants tried")
}

func TestErrorsDoNotLeakHashes(t *testing.T) {
	payload := `{"name":"x","color":"red"}`
	_, err := VerifyHashInSignedHashes(SHA256Hex(payload), payload, signedBy("ff"), testChain)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), SHA256Hex(payload))
	assert.NotContains(t, err.Error(), SHA256Hex(`{"name":"x"}`))
}

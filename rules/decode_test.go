package rules

import (
	"encoding/base64"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules/codec"
	"github.com/iov-one/whitelist/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	u1 := weavetest.NewKey(t)
	u2 := weavetest.NewKey(t)

	b := weavetest.NewContainer().
		WithUser("u1", u1, "SUPERADMIN").
		WithUser("u2", u2).
		WithUser("u3", nil).
		WithGroup("g1", "u1", "u2", "u3").
		WithAddressRules(weavetest.AddressRules("ETH", "mainnet",
			weavetest.Path(weavetest.Threshold("g1", 2)),
		)).
		WithContractRules("Any", "", weavetest.Path(weavetest.Threshold("g1", 1))).
		WithTimestamp(1700000000)
	b.Message().HsmSlotId = 7
	b.Message().MinimumDistinctUserSignatures = 2
	b.Message().EnforcedRulesHash = []byte{0xca, 0xfe}

	addr := b.Message().AddressWhitelistingRules[0]
	addr.Lines = append(addr.Lines, weavetest.WalletLine(t, "BTC/wallet1",
		weavetest.Path(weavetest.Threshold("g1", 1))))

	c, err := Decode(b.Encode(t))
	require.NoError(t, err)

	require.Len(t, c.Users, 3)
	require.Len(t, c.Groups, 1)
	assert.Equal(t, 7, int(c.HSMSlotID))
	assert.Equal(t, 2, c.MinimumDistinctUserSignatures)
	assert.Equal(t, "cafe", c.EnforcedRulesHash)
	assert.Equal(t, int64(1700000000), c.Timestamp.Unix())

	user, ok := c.User("u1")
	require.True(t, ok)
	assert.True(t, user.HasRole("superadmin"))
	key, err := user.PublicKey()
	require.NoError(t, err)
	assert.NotNil(t, key)

	user, ok = c.User("u3")
	require.True(t, ok)
	_, err = user.PublicKey()
	assert.True(t, errors.ErrDecode.Is(err))

	_, ok = c.User("u4")
	assert.False(t, ok)

	group, ok := c.Group("g1")
	require.True(t, ok)
	assert.True(t, group.HasMember("u2"))
	assert.False(t, group.HasMember("u4"))

	require.Len(t, c.AddressRules, 1)
	rs := c.AddressRules[0]
	assert.Equal(t, Scope{Blockchain: "ETH", Network: "mainnet"}, rs.Scope)
	assert.Equal(t, []SequentialThresholds{{{GroupID: "g1", MinimumSignatures: 2}}}, rs.Parallel)
	require.Len(t, rs.Lines, 1)
	assert.Equal(t, []RuleSource{{Type: codec.SourceTypeInternalWallet, WalletPath: "BTC/wallet1"}}, rs.Lines[0].Sources)

	require.Len(t, c.ContractRules, 1)
	assert.True(t, IsWildcard(c.ContractRules[0].Blockchain))
	assert.True(t, IsWildcard(c.ContractRules[0].Network))
}

func TestDecodeContainerWithoutRules(t *testing.T) {
	// Missing rules are reported by threshold resolution, not by the
	// decoder.
	raw, err := proto.Marshal(&codec.RulesContainer{Timestamp: 1})
	require.NoError(t, err)
	c, err := Decode(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Empty(t, c.AddressRules)
	assert.Empty(t, c.ContractRules)
}

func TestDecodeErrors(t *testing.T) {
	dup := weavetest.NewContainer().WithUser("u1", nil).WithUser("u1", nil)
	dupGroup := weavetest.NewContainer().WithGroup("g1").WithGroup("g1")

	badLine := weavetest.AddressRules("ETH", "mainnet")
	badLine.Lines = []*codec.RuleLine{{
		Sources: []*codec.RuleSource{{Type: codec.SourceTypeInternalWallet, Payload: []byte{0x0a, 0x09}}},
	}}
	withBadLine := weavetest.NewContainer().WithAddressRules(badLine)

	cases := map[string]string{
		"empty":              "",
		"not base64":         "%%%",
		"truncated protobuf": base64.StdEncoding.EncodeToString([]byte{0x0a, 0x05, 0x01}),
		"duplicated user":    dup.Encode(t),
		"duplicated group":   dupGroup.Encode(t),
		"malformed line":     withBadLine.Encode(t),
	}
	for testName, encoded := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := Decode(encoded)
			if !errors.ErrDecode.Is(err) {
				t.Fatalf("want decode error, got %+v", err)
			}
		})
	}
}

func TestDecodeSignatures(t *testing.T) {
	k := weavetest.NewKey(t)
	sigs, err := DecodeSignatures(weavetest.Endorse(t, []byte("container"), k, k))
	require.NoError(t, err)
	require.Len(t, sigs, 2)
	assert.Equal(t, "superadmin-a", sigs[0].UserID)
	assert.True(t, k.PublicKey().Verify([]byte("container"), sigs[1].Signature))

	cases := map[string]string{
		"empty input":   "",
		"not base64":    "!!",
		"no signatures": base64.StdEncoding.EncodeToString([]byte{0x10, 0x01}),
		"truncated":     base64.StdEncoding.EncodeToString([]byte{0x0a, 0x7f}),
	}
	for testName, encoded := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := DecodeSignatures(encoded)
			if !errors.ErrDecode.Is(err) {
				t.Fatalf("want decode error, got %+v", err)
			}
		})
	}
}

func TestIsWildcard(t *testing.T) {
	for v, want := range map[string]bool{
		"":        true,
		" ":       true,
		"Any":     true,
		"ANY":     true,
		"any":     true,
		"ETH":     false,
		"mainnet": false,
		"Anyway":  false,
	} {
		if got := IsWildcard(v); got != want {
			t.Errorf("IsWildcard(%q) = %v", v, got)
		}
	}
}

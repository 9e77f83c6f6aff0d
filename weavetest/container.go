package weavetest

import (
	"encoding/base64"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/rules/codec"
)

// ContainerBuilder assembles a rules container.
type ContainerBuilder struct {
	msg codec.RulesContainer
}

// NewContainer returns an empty rules container builder.
func NewContainer() *ContainerBuilder {
	return &ContainerBuilder{}
}

// WithUser registers a rule user with the public part of given key. Use a
// nil key to register a user without a public key.
func (b *ContainerBuilder) WithUser(id string, key *Key, roles ...string) *ContainerBuilder {
	u := &codec.RuleUser{Id: id, Name: "user " + id, Roles: roles}
	if key != nil {
		u.PublicKey = []byte(key.PEM)
	}
	b.msg.Users = append(b.msg.Users, u)
	return b
}

// WithGroup registers a group of users.
func (b *ContainerBuilder) WithGroup(id string, userIDs ...string) *ContainerBuilder {
	b.msg.Groups = append(b.msg.Groups, &codec.RuleGroup{Id: id, Name: "group " + id, UserIds: userIDs})
	return b
}

// WithAddressRules appends an address rule set.
func (b *ContainerBuilder) WithAddressRules(r *codec.AddressWhitelistingRules) *ContainerBuilder {
	b.msg.AddressWhitelistingRules = append(b.msg.AddressWhitelistingRules, r)
	return b
}

// WithContractRules appends a contract rule set.
func (b *ContainerBuilder) WithContractRules(blockchain, network string, paths ...*codec.SequentialThresholds) *ContainerBuilder {
	b.msg.ContractAddressWhitelistingRules = append(b.msg.ContractAddressWhitelistingRules,
		&codec.ContractAddressWhitelistingRules{
			Blockchain:         blockchain,
			Network:            network,
			ParallelThresholds: paths,
		})
	return b
}

// WithTimestamp sets the container creation time in unix seconds.
func (b *ContainerBuilder) WithTimestamp(ts int64) *ContainerBuilder {
	b.msg.Timestamp = ts
	return b
}

// Message returns the wire message built so far.
func (b *ContainerBuilder) Message() *codec.RulesContainer {
	return &b.msg
}

// Bytes returns the binary encoding of the container.
func (b *ContainerBuilder) Bytes(t testing.TB) []byte {
	t.Helper()
	raw, err := proto.Marshal(&b.msg)
	if err != nil {
		t.Fatalf("cannot marshal rules container: %s", err)
	}
	return raw
}

// Encode returns the base64 encoding of the container.
func (b *ContainerBuilder) Encode(t testing.TB) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(b.Bytes(t))
}

// AddressRules returns an address rule set.
func AddressRules(blockchain, network string, paths ...*codec.SequentialThresholds) *codec.AddressWhitelistingRules {
	return &codec.AddressWhitelistingRules{
		Blockchain:         blockchain,
		Network:            network,
		ParallelThresholds: paths,
	}
}

// WalletLine returns a rule line bound to an internal wallet path.
func WalletLine(t testing.TB, path string, paths ...*codec.SequentialThresholds) *codec.RuleLine {
	t.Helper()
	payload, err := proto.Marshal(&codec.InternalWalletSource{Path: path})
	if err != nil {
		t.Fatalf("cannot marshal wallet source: %s", err)
	}
	return &codec.RuleLine{
		Sources: []*codec.RuleSource{
			{Type: codec.SourceTypeInternalWallet, Payload: payload},
		},
		ParallelThresholds: paths,
	}
}

// Path returns an authorization path requiring all given thresholds.
func Path(thresholds ...*codec.GroupThreshold) *codec.SequentialThresholds {
	return &codec.SequentialThresholds{Thresholds: thresholds}
}

// Threshold returns a group threshold.
func Threshold(groupID string, min int32) *codec.GroupThreshold {
	return &codec.GroupThreshold{GroupId: groupID, MinimumSignatures: min}
}

// Endorse returns the base64 encoded SuperAdmin signature blob of a raw
// rules container, one signature per key.
func Endorse(t testing.TB, container []byte, keys ...*Key) string {
	t.Helper()
	var msg codec.UserSignatures
	for i, k := range keys {
		sig, err := k.Sign(container)
		if err != nil {
			t.Fatalf("cannot sign container: %s", err)
		}
		msg.Signatures = append(msg.Signatures, &codec.UserSignature{
			UserId:    "superadmin-" + string(rune('a'+i)),
			Signature: sig,
		})
	}
	raw, err := proto.Marshal(&msg)
	if err != nil {
		t.Fatalf("cannot marshal signatures: %s", err)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// Sign returns the signature of a user approving given hashes.
func Sign(t testing.TB, userID string, key *Key, hashes ...string) envelope.Signature {
	t.Helper()
	sig := envelope.Signature{UserID: userID, Hashes: hashes}
	msg, err := sig.SignedMessage()
	if err != nil {
		t.Fatalf("cannot build signed message: %s", err)
	}
	raw, err := key.Sign(msg)
	if err != nil {
		t.Fatalf("cannot sign hashes: %s", err)
	}
	sig.Signature = base64.StdEncoding.EncodeToString(raw)
	return sig
}

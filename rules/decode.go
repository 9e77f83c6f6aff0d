package rules

import (
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/whitelist/crypto"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules/codec"
)

// Decode parses a base64 encoded rules container. A container without any
// rule set is valid. Missing rules are reported when thresholds are
// resolved.
func Decode(encoded string) (*Container, error) {
	raw, err := DecodeBase64(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "rules container")
	}
	return DecodeBytes(raw)
}

// DecodeBase64 decodes a base64 encoded blob. Empty input is an error.
func DecodeBase64(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.Wrap(errors.ErrDecode, "empty")
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "invalid base64")
	}
	return raw, nil
}

// DecodeBytes parses a binary rules container.
func DecodeBytes(raw []byte) (*Container, error) {
	var msg codec.RulesContainer
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "malformed rules container")
	}
	return fromProto(&msg)
}

func fromProto(msg *codec.RulesContainer) (*Container, error) {
	c := &Container{
		Users:                          make([]User, 0, len(msg.Users)),
		Groups:                         make([]Group, 0, len(msg.Groups)),
		MinimumDistinctUserSignatures:  int(msg.MinimumDistinctUserSignatures),
		MinimumDistinctGroupSignatures: int(msg.MinimumDistinctGroupSignatures),
		HSMSlotID:                      msg.HsmSlotId,
		users:                          make(map[string]int, len(msg.Users)),
		groups:                         make(map[string]int, len(msg.Groups)),
	}
	if len(msg.EnforcedRulesHash) > 0 {
		c.EnforcedRulesHash = hex.EncodeToString(msg.EnforcedRulesHash)
	}
	if msg.Timestamp != 0 {
		c.Timestamp = time.Unix(msg.Timestamp, 0).UTC()
	}

	for i, u := range msg.Users {
		if u == nil {
			continue
		}
		if u.Id == "" {
			return nil, errors.Wrapf(errors.ErrDecode, "user %d without id", i)
		}
		if _, ok := c.users[u.Id]; ok {
			return nil, errors.Wrapf(errors.ErrDecode, "duplicated user %q", u.Id)
		}
		user := User{
			ID:           u.Id,
			Name:         u.Name,
			PublicKeyPEM: string(u.PublicKey),
			Roles:        u.Roles,
		}
		user.key, user.keyErr = crypto.ParsePublicKey(u.PublicKey)
		c.users[u.Id] = len(c.Users)
		c.Users = append(c.Users, user)
	}

	for i, g := range msg.Groups {
		if g == nil {
			continue
		}
		if g.Id == "" {
			return nil, errors.Wrapf(errors.ErrDecode, "group %d without id", i)
		}
		if _, ok := c.groups[g.Id]; ok {
			return nil, errors.Wrapf(errors.ErrDecode, "duplicated group %q", g.Id)
		}
		group := Group{
			ID:      g.Id,
			Name:    g.Name,
			UserIDs: g.UserIds,
			members: make(map[string]struct{}, len(g.UserIds)),
		}
		for _, id := range g.UserIds {
			group.members[id] = struct{}{}
		}
		c.groups[g.Id] = len(c.Groups)
		c.Groups = append(c.Groups, group)
	}

	for i, r := range msg.AddressWhitelistingRules {
		if r == nil {
			continue
		}
		rules := AddressRules{
			Scope:    Scope{Blockchain: r.Blockchain, Network: r.Network},
			Parallel: fromProtoThresholds(r.ParallelThresholds),
		}
		for j, l := range r.Lines {
			if l == nil {
				continue
			}
			line, err := fromProtoLine(l)
			if err != nil {
				return nil, errors.Wrapf(err, "address rules %d line %d", i, j)
			}
			rules.Lines = append(rules.Lines, line)
		}
		c.AddressRules = append(c.AddressRules, rules)
	}

	for _, r := range msg.ContractAddressWhitelistingRules {
		if r == nil {
			continue
		}
		c.ContractRules = append(c.ContractRules, ContractRules{
			Scope:    Scope{Blockchain: r.Blockchain, Network: r.Network},
			Parallel: fromProtoThresholds(r.ParallelThresholds),
		})
	}
	return c, nil
}

func fromProtoThresholds(paths []*codec.SequentialThresholds) []SequentialThresholds {
	res := make([]SequentialThresholds, 0, len(paths))
	for _, p := range paths {
		if p == nil {
			continue
		}
		seq := make(SequentialThresholds, 0, len(p.Thresholds))
		for _, t := range p.Thresholds {
			if t == nil {
				continue
			}
			seq = append(seq, GroupThreshold{
				GroupID:           t.GroupId,
				MinimumSignatures: int(t.MinimumSignatures),
			})
		}
		res = append(res, seq)
	}
	return res
}

func fromProtoLine(l *codec.RuleLine) (RuleLine, error) {
	line := RuleLine{
		Parallel: fromProtoThresholds(l.ParallelThresholds),
	}
	for k, s := range l.Sources {
		if s == nil {
			continue
		}
		src := RuleSource{Type: s.Type}
		if s.Type == codec.SourceTypeInternalWallet {
			var w codec.InternalWalletSource
			if err := proto.Unmarshal(s.Payload, &w); err != nil {
				return line, errors.Wrapf(errors.ErrDecode, "malformed internal wallet source %d", k)
			}
			src.WalletPath = w.Path
		}
		line.Sources = append(line.Sources, src)
	}
	return line, nil
}

// UserSignature is a single SuperAdmin signature of a rules container.
type UserSignature struct {
	UserID    string
	Signature []byte
}

// DecodeSignatures parses the base64 encoded signature blob of a rules
// container. A blob without any signature is an error.
func DecodeSignatures(encoded string) ([]UserSignature, error) {
	raw, err := DecodeBase64(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "rules signatures")
	}
	var msg codec.UserSignatures
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "malformed rules signatures")
	}
	sigs := make([]UserSignature, 0, len(msg.Signatures))
	for _, s := range msg.Signatures {
		if s == nil {
			continue
		}
		sigs = append(sigs, UserSignature{UserID: s.UserId, Signature: s.Signature})
	}
	if len(sigs) == 0 {
		return nil, errors.Wrap(errors.ErrDecode, "no rules signatures")
	}
	return sigs, nil
}

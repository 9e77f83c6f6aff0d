package rules

import (
	"strings"
	"time"

	"github.com/iov-one/whitelist/crypto"
	"github.com/iov-one/whitelist/rules/codec"
)

// Wildcard is the canonical value of a scope field that matches anything.
const Wildcard = "Any"

// IsWildcard returns true if given scope value is unset, empty or equal to
// "Any" regardless of case.
func IsWildcard(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, Wildcard)
}

// Container is the decoded rules container. It is never modified after
// Decode returns and is safe for concurrent use.
type Container struct {
	Users         []User          `json:"users"`
	Groups        []Group         `json:"groups"`
	AddressRules  []AddressRules  `json:"addressWhitelistingRules"`
	ContractRules []ContractRules `json:"contractAddressWhitelistingRules"`

	MinimumDistinctUserSignatures  int `json:"minimumDistinctUserSignatures"`
	MinimumDistinctGroupSignatures int `json:"minimumDistinctGroupSignatures"`

	// EnforcedRulesHash is hex encoded.
	EnforcedRulesHash string    `json:"enforcedRulesHash,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	HSMSlotID         int32     `json:"hsmSlotId"`

	users  map[string]int
	groups map[string]int
}

// User returns the user with given id.
func (c *Container) User(id string) (*User, bool) {
	i, ok := c.users[id]
	if !ok {
		return nil, false
	}
	return &c.Users[i], true
}

// Group returns the group with given id.
func (c *Container) Group(id string) (*Group, bool) {
	i, ok := c.groups[id]
	if !ok {
		return nil, false
	}
	return &c.Groups[i], true
}

// User is a rule user that can approve whitelisting requests.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	PublicKeyPEM string   `json:"publicKey,omitempty"`
	Roles        []string `json:"roles,omitempty"`

	key    crypto.PublicKey
	keyErr error
}

// PublicKey returns the parsed registered key of the user. A user with a
// missing or malformed key cannot contribute valid signatures.
func (u *User) PublicKey() (crypto.PublicKey, error) {
	return u.key, u.keyErr
}

// HasRole returns true if the user was granted given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// Group is a named set of users. Members are referenced by user id.
type Group struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	UserIDs []string `json:"userIds"`

	members map[string]struct{}
}

// HasMember returns true if the user with given id belongs to the group.
func (g *Group) HasMember(userID string) bool {
	_, ok := g.members[userID]
	return ok
}

// GroupThreshold requires a minimum number of distinct valid signatures from
// members of a group.
type GroupThreshold struct {
	GroupID           string `json:"groupId"`
	MinimumSignatures int    `json:"minimumSignatures"`
}

// SequentialThresholds is one authorization path. Every group threshold of
// the path must be met.
type SequentialThresholds []GroupThreshold

// Scope binds a rule set to a blockchain and a network. Either value can be
// a wildcard.
type Scope struct {
	Blockchain string `json:"blockchain"`
	Network    string `json:"network"`
}

// AddressRules are the whitelisting rules for addresses of a scope.
type AddressRules struct {
	Scope
	// Parallel lists alternative authorization paths. Satisfying any one
	// of them is enough.
	Parallel []SequentialThresholds `json:"parallelThresholds"`
	Lines    []RuleLine             `json:"lines,omitempty"`
}

// ContractRules are the whitelisting rules for contracts and tokens of a
// scope. They have no per line override.
type ContractRules struct {
	Scope
	Parallel []SequentialThresholds `json:"parallelThresholds"`
}

// RuleLine overrides the default thresholds of a rule set for the sources it
// lists.
type RuleLine struct {
	Sources  []RuleSource           `json:"sources"`
	Parallel []SequentialThresholds `json:"parallelThresholds"`
}

// RuleSource is a decoded rule line source. WalletPath is only set for
// internal wallet sources.
type RuleSource struct {
	Type       codec.RuleSourceType `json:"type"`
	WalletPath string               `json:"walletPath,omitempty"`
}

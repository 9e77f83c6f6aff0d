package threshold

import (
	"strings"

	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules"
	"github.com/iov-one/whitelist/rules/codec"
)

// Rank is the specificity of a rule set scope for a target. Higher is more
// specific.
type Rank int

const (
	// NoMatch scopes never apply.
	NoMatch Rank = iota
	// GlobalDefault scopes have a wildcard blockchain.
	GlobalDefault
	// BlockchainOnly scopes match the blockchain and have a wildcard
	// network.
	BlockchainOnly
	// Exact scopes match both the blockchain and the network.
	Exact
)

// ScopeRank returns how specific scope is for given target.
func ScopeRank(scope, target rules.Scope) Rank {
	if rules.IsWildcard(scope.Blockchain) {
		return GlobalDefault
	}
	if !strings.EqualFold(strings.TrimSpace(scope.Blockchain), strings.TrimSpace(target.Blockchain)) {
		return NoMatch
	}
	if rules.IsWildcard(scope.Network) {
		return BlockchainOnly
	}
	if strings.EqualFold(strings.TrimSpace(scope.Network), strings.TrimSpace(target.Network)) {
		return Exact
	}
	return NoMatch
}

// bestScope returns the index of the most specific scope. Among scopes of
// the same rank the first one wins.
func bestScope(n int, scopeAt func(int) rules.Scope, target rules.Scope) (int, bool) {
	best, bestRank := -1, NoMatch
	for i := 0; i < n; i++ {
		if r := ScopeRank(scopeAt(i), target); r > bestRank {
			best, bestRank = i, r
			if r == Exact {
				break
			}
		}
	}
	return best, best >= 0
}

// Links is the linked wallet and address context of a verified address
// payload.
type Links struct {
	// InternalAddresses is the number of linked internal addresses.
	InternalAddresses int
	// WalletPaths are the derivation paths of the linked internal wallets.
	WalletPaths []string
}

// ResolveAddress returns the parallel thresholds that apply to an address of
// given scope.
//
// A rule line overrides the default thresholds only when the address is
// linked to no internal address and to exactly one internal wallet, and a
// rule line is bound to the path of that wallet.
func ResolveAddress(c *rules.Container, target rules.Scope, links Links) ([]rules.SequentialThresholds, error) {
	if c == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no rules container")
	}
	i, ok := bestScope(len(c.AddressRules), func(i int) rules.Scope {
		return c.AddressRules[i].Scope
	}, target)
	if !ok {
		return nil, notFound("address", target)
	}
	set := c.AddressRules[i]

	paths := set.Parallel
	if links.InternalAddresses == 0 && len(links.WalletPaths) == 1 {
		if line, ok := findLine(set.Lines, links.WalletPaths[0]); ok {
			paths = line.Parallel
		}
	}
	if len(paths) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound,
			"no address thresholds for blockchain %q network %q", target.Blockchain, target.Network)
	}
	return paths, nil
}

// ResolveContract returns the parallel thresholds that apply to a contract
// or token of given scope.
func ResolveContract(c *rules.Container, target rules.Scope) ([]rules.SequentialThresholds, error) {
	if c == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no rules container")
	}
	i, ok := bestScope(len(c.ContractRules), func(i int) rules.Scope {
		return c.ContractRules[i].Scope
	}, target)
	if !ok {
		return nil, notFound("contract", target)
	}
	paths := c.ContractRules[i].Parallel
	if len(paths) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound,
			"no contract thresholds for blockchain %q network %q", target.Blockchain, target.Network)
	}
	return paths, nil
}

// findLine returns the first rule line bound to given internal wallet path.
// Sources of other types are ignored.
func findLine(lines []rules.RuleLine, walletPath string) (rules.RuleLine, bool) {
	for _, l := range lines {
		for _, s := range l.Sources {
			if s.Type == codec.SourceTypeInternalWallet && s.WalletPath == walletPath {
				return l, true
			}
		}
	}
	return rules.RuleLine{}, false
}

func notFound(kind string, target rules.Scope) error {
	return errors.Wrapf(errors.ErrNotFound,
		"no %s rules for blockchain %q network %q", kind, target.Blockchain, target.Network)
}

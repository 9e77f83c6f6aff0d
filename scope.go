package whitelist

import (
	"strings"

	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules"
)

// ResolveScope returns the blockchain and network used to select rules.
// Values of the verified payload take precedence. Envelope values are used
// when the payload omits them and must agree with the payload otherwise.
func ResolveScope(payload, env rules.Scope) (rules.Scope, error) {
	blockchain, err := pick("blockchain", payload.Blockchain, env.Blockchain)
	if err != nil {
		return rules.Scope{}, err
	}
	network, err := pick("network", payload.Network, env.Network)
	if err != nil {
		return rules.Scope{}, err
	}
	return rules.Scope{Blockchain: blockchain, Network: network}, nil
}

func pick(name, verified, claimed string) (string, error) {
	verified = strings.TrimSpace(verified)
	claimed = strings.TrimSpace(claimed)
	switch {
	case verified == "":
		return claimed, nil
	case claimed == "" || strings.EqualFold(verified, claimed):
		return verified, nil
	default:
		return "", errors.Wrapf(errors.ErrIntegrity, "envelope %s %q differs from the signed payload", name, claimed)
	}
}

package address

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules"
	"github.com/iov-one/whitelist/threshold"
)

// WhitelistedAddress is a verified whitelisted address.
type WhitelistedAddress struct {
	ID           string `json:"id"`
	Blockchain   string `json:"blockchain"`
	Network      string `json:"network"`
	Address      string `json:"address"`
	Memo         string `json:"memo,omitempty"`
	Label        string `json:"label,omitempty"`
	CustomerID   string `json:"customerId,omitempty"`
	ContractType string `json:"contractType,omitempty"`
	AddressType  string `json:"addressType,omitempty"`

	LinkedInternalAddresses []InternalAddress `json:"linkedInternalAddresses,omitempty"`
	LinkedWallets           []InternalWallet  `json:"linkedWallets,omitempty"`

	CreatedAt  time.Time         `json:"createdAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// InternalAddress is an internal address the whitelisted address is
// linked to.
type InternalAddress struct {
	ID    envelope.ID `json:"id"`
	Label string      `json:"label,omitempty"`
}

// InternalWallet is an internal wallet the whitelisted address is linked
// to.
type InternalWallet struct {
	ID    envelope.ID `json:"id"`
	Path  string      `json:"path"`
	Label string      `json:"label,omitempty"`
}

// payload is the signed JSON document. Older payloads name the blockchain
// currency.
type payload struct {
	Currency                string            `json:"currency"`
	Blockchain              string            `json:"blockchain"`
	Network                 string            `json:"network"`
	Address                 string            `json:"address"`
	Memo                    string            `json:"memo"`
	Label                   string            `json:"label"`
	CustomerID              string            `json:"customerId"`
	ContractType            string            `json:"contractType"`
	AddressType             string            `json:"addressType"`
	LinkedInternalAddresses []InternalAddress `json:"linkedInternalAddresses"`
	LinkedWallets           []InternalWallet  `json:"linkedWallets"`
}

// parsePayload decodes the verified payload string.
func parsePayload(raw string) (*WhitelistedAddress, error) {
	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "malformed address payload")
	}
	a := &WhitelistedAddress{
		Blockchain:              p.Blockchain,
		Network:                 p.Network,
		Address:                 p.Address,
		Memo:                    p.Memo,
		Label:                   p.Label,
		CustomerID:              p.CustomerID,
		ContractType:            p.ContractType,
		AddressType:             p.AddressType,
		LinkedInternalAddresses: p.LinkedInternalAddresses,
		LinkedWallets:           p.LinkedWallets,
	}
	if a.Blockchain == "" {
		a.Blockchain = p.Currency
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate returns an error if the address is not usable.
func (a *WhitelistedAddress) Validate() error {
	var errs error
	if strings.TrimSpace(a.Address) == "" {
		errs = errors.AppendField(errs, "Address", errors.Wrap(errors.ErrValidation, "required"))
	}
	for i, w := range a.LinkedWallets {
		if w.Path == "" {
			errs = errors.AppendField(errs, "LinkedWallets."+strconv.Itoa(i), errors.Wrap(errors.ErrValidation, "path required"))
		}
	}
	return errs
}

// Scope returns the blockchain and network of the address.
func (a *WhitelistedAddress) Scope() rules.Scope {
	return rules.Scope{Blockchain: a.Blockchain, Network: a.Network}
}

// Links returns the context used to select rule line overrides.
func (a *WhitelistedAddress) Links() threshold.Links {
	paths := make([]string, len(a.LinkedWallets))
	for i, w := range a.LinkedWallets {
		paths[i] = w.Path
	}
	return threshold.Links{
		InternalAddresses: len(a.LinkedInternalAddresses),
		WalletPaths:       paths,
	}
}

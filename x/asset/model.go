package asset

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules"
)

// WhitelistedAsset is a verified whitelisted contract or token.
type WhitelistedAsset struct {
	ID              string `json:"id"`
	Blockchain      string `json:"blockchain"`
	Network         string `json:"network"`
	ContractAddress string `json:"contractAddress"`
	Symbol          string `json:"symbol,omitempty"`
	Name            string `json:"name,omitempty"`
	Decimals        int64  `json:"decimals"`
	Kind            string `json:"kind,omitempty"`
	TokenID         string `json:"tokenId,omitempty"`
	IsNFT           bool   `json:"isNFT"`
	KindType        string `json:"kindType,omitempty"`

	CreatedAt  time.Time         `json:"createdAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type payload struct {
	Blockchain      string      `json:"blockchain"`
	Network         string      `json:"network"`
	ContractAddress string      `json:"contractAddress"`
	Symbol          string      `json:"symbol"`
	Name            string      `json:"name"`
	Decimals        json.Number `json:"decimals"`
	Kind            string      `json:"kind"`
	TokenID         string      `json:"tokenId"`
	IsNFT           bool        `json:"isNFT"`
	KindType        string      `json:"kindType"`
}

// parsePayload decodes the verified payload string.
func parsePayload(raw string) (*WhitelistedAsset, error) {
	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, errors.Wrap(errors.ErrDecode, "malformed asset payload")
	}
	a := &WhitelistedAsset{
		Blockchain:      p.Blockchain,
		Network:         p.Network,
		ContractAddress: p.ContractAddress,
		Symbol:          p.Symbol,
		Name:            p.Name,
		Kind:            p.Kind,
		TokenID:         p.TokenID,
		IsNFT:           p.IsNFT,
		KindType:        p.KindType,
	}
	if p.Decimals != "" {
		d, err := p.Decimals.Int64()
		if err != nil {
			return nil, errors.Wrap(errors.ErrDecode, "decimals must be an integer")
		}
		a.Decimals = d
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate returns an error if the asset is not usable.
func (a *WhitelistedAsset) Validate() error {
	var errs error
	if strings.TrimSpace(a.ContractAddress) == "" {
		errs = errors.AppendField(errs, "ContractAddress", errors.Wrap(errors.ErrValidation, "required"))
	}
	if a.Decimals < 0 {
		errs = errors.AppendField(errs, "Decimals", errors.Wrap(errors.ErrValidation, "must not be negative"))
	}
	return errs
}

// Scope returns the blockchain and network of the asset.
func (a *WhitelistedAsset) Scope() rules.Scope {
	return rules.Scope{Blockchain: a.Blockchain, Network: a.Network}
}

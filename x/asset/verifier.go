package asset

import (
	"github.com/iov-one/whitelist"
	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules"
	"github.com/iov-one/whitelist/threshold"
)

// Kind labels asset verifications in logs and metrics.
const Kind = "asset"

// Result is a verified asset together with the rules container it was
// approved under.
type Result struct {
	Asset     *WhitelistedAsset
	Container *rules.Container
	Hash      string
}

// BatchItem is the outcome of verifying one envelope of a batch.
type BatchItem struct {
	Result *Result
	Err    error
}

// Verifier verifies asset envelopes.
type Verifier struct {
	engine *whitelist.Engine
}

// NewVerifier returns a verifier using given engine.
func NewVerifier(engine *whitelist.Engine) *Verifier {
	return &Verifier{engine: engine}
}

// Verify verifies a single envelope.
func (v *Verifier) Verify(env *Envelope) (*Result, error) {
	return v.verify(env, nil)
}

// VerifyBatch verifies all envelopes, reusing verified rules containers.
// Items are returned in the order of envs.
func (v *Verifier) VerifyBatch(envs []*Envelope) ([]BatchItem, error) {
	items := make([]BatchItem, len(envs))
	err := v.engine.Batch(len(envs), func(i int, cache *whitelist.ContainerCache) {
		res, err := v.verify(envs[i], cache)
		items[i] = BatchItem{Result: res, Err: err}
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (v *Verifier) verify(env *Envelope, cache *whitelist.ContainerCache) (*Result, error) {
	if env == nil {
		return nil, errors.Wrap(errors.ErrValidation, "missing envelope")
	}

	var asset *WhitelistedAsset
	req := whitelist.Request{
		Kind:       Kind,
		ID:         env.ID,
		Metadata:   &env.Metadata,
		Rules:      env.Rules,
		Signed:     &env.SignedContractAddress,
		Strategies: LegacyStrategies,
	}
	res, err := v.engine.Verify(req, cache, func(c *rules.Container, hash string) error {
		a, err := parsePayload(env.Metadata.PayloadAsString)
		if err != nil {
			return err
		}
		scope, err := whitelist.ResolveScope(a.Scope(), rules.Scope{Blockchain: env.Blockchain, Network: env.Network})
		if err != nil {
			return err
		}
		paths, err := threshold.ResolveContract(c, scope)
		if err != nil {
			return err
		}
		if err := threshold.Evaluate(paths, c, env.SignedContractAddress.Signatures, hash); err != nil {
			return err
		}
		a.Blockchain, a.Network = scope.Blockchain, scope.Network
		asset = a
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "asset %q", env.ID)
	}

	asset.ID = env.ID
	asset.CreatedAt = envelope.CreatedAt(env.Trails, env.CreationDate)
	asset.Attributes = envelope.AttributeMap(env.Attributes)
	return &Result{Asset: asset, Container: res.Container, Hash: res.Hash}, nil
}

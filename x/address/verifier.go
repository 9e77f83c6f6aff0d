package address

import (
	"github.com/iov-one/whitelist"
	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules"
	"github.com/iov-one/whitelist/threshold"
)

// Kind labels address verifications in logs and metrics.
const Kind = "address"

// Result is a verified address together with the rules container it was
// approved under.
type Result struct {
	Address   *WhitelistedAddress
	Container *rules.Container
	// Hash is the payload hash the users approved.
	Hash string
}

// BatchItem is the outcome of verifying one envelope of a batch. Exactly one
// of Result and Err is set.
type BatchItem struct {
	Result *Result
	Err    error
}

// Verifier verifies address envelopes.
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

// VerifyBatch verifies all envelopes. Envelopes sharing a rules container
// verify it once. The returned items are in the order of envs. The error
// is only set if the batch could not be started.
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

	var addr *WhitelistedAddress
	req := whitelist.Request{
		Kind:       Kind,
		ID:         env.ID,
		Metadata:   &env.Metadata,
		Rules:      env.Rules,
		Signed:     &env.SignedAddress,
		Strategies: LegacyStrategies,
	}
	res, err := v.engine.Verify(req, cache, func(c *rules.Container, hash string) error {
		// The payload hash is verified and approved at this point.
		a, err := parsePayload(env.Metadata.PayloadAsString)
		if err != nil {
			return err
		}
		scope, err := whitelist.ResolveScope(a.Scope(), rules.Scope{Blockchain: env.Blockchain, Network: env.Network})
		if err != nil {
			return err
		}
		paths, err := threshold.ResolveAddress(c, scope, a.Links())
		if err != nil {
			return err
		}
		if err := threshold.Evaluate(paths, c, env.SignedAddress.Signatures, hash); err != nil {
			return err
		}
		a.Blockchain, a.Network = scope.Blockchain, scope.Network
		addr = a
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "address %q", env.ID)
	}

	addr.ID = env.ID
	addr.CreatedAt = envelope.CreatedAt(env.Trails, env.CreationDate)
	addr.Attributes = envelope.AttributeMap(env.Attributes)
	return &Result{Address: addr, Container: res.Container, Hash: res.Hash}, nil
}

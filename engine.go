package whitelist

import (
	"time"

	"github.com/iov-one/whitelist/crypto"
	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/integrity"
	"github.com/iov-one/whitelist/rules"
	"github.com/tendermint/tendermint/libs/log"
	"golang.org/x/sync/errgroup"
)

// Engine verifies rules containers and runs the verification steps shared
// by all envelope kinds. Configure it with the With* methods before first
// use. After that it is safe for concurrent use.
type Engine struct {
	conf        Config
	superAdmins []crypto.PublicKey
	logger      log.Logger
	metrics     *Metrics
}

// NewEngine returns an engine using given configuration.
func NewEngine(conf Config) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	keys, err := crypto.ParsePublicKeys(conf.SuperAdminKeys)
	if err != nil {
		return nil, errors.Wrap(err, "super admin keys")
	}
	return &Engine{
		conf:        conf.withDefaults(),
		superAdmins: keys,
		logger:      log.NewNopLogger(),
	}, nil
}

// WithLogger sets the logger and returns the engine, to make it easy to
// chain in initialization.
func (e *Engine) WithLogger(logger log.Logger) *Engine {
	e.logger = logger.With("module", "whitelist")
	return e
}

// WithMetrics sets the metrics and returns the engine.
func (e *Engine) WithMetrics(m *Metrics) *Engine {
	e.metrics = m
	return e
}

// Logger returns the engine logger.
func (e *Engine) Logger() log.Logger {
	return e.logger
}

// VerifyContainer checks the SuperAdmin endorsement of a rules container
// and decodes it.
func (e *Engine) VerifyContainer(r envelope.Rules) (*rules.Container, error) {
	raw, err := integrity.VerifyRulesContainerSignatures(r.RulesContainer, r.RulesSignatures, e.superAdmins, e.conf.MinValidSignatures)
	if err != nil {
		return nil, err
	}
	c, err := rules.DecodeBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "rules container")
	}
	e.logger.Debug("Rules container verified",
		"users", len(c.Users),
		"groups", len(c.Groups),
		"address_rules", len(c.AddressRules),
		"contract_rules", len(c.ContractRules))
	return c, nil
}

// Request is a single envelope, reduced to the parts shared by all kinds.
type Request struct {
	// Kind labels logs and metrics, for example "address".
	Kind string
	// ID identifies the envelope in logs.
	ID         string
	Metadata   *envelope.Metadata
	Rules      envelope.Rules
	Signed     *envelope.SignedPayload
	Strategies []integrity.LegacyStrategy
}

// AuthorizeFunc selects and evaluates the thresholds for a request. It is
// called with the verified container and the hash approved by the users.
type AuthorizeFunc func(c *rules.Container, hash string) error

// Verified is the outcome of a successful verification.
type Verified struct {
	Container *rules.Container
	// Hash is the hash the users approved. It differs from the claimed
	// hash when a legacy payload shape was signed.
	Hash string
}

// Verify runs the verification steps in order: preconditions, payload
// hash, rules container endorsement and decoding, signed hash check and
// finally authorize. A failure aborts the remaining steps.
//
// When cache is not nil, the rules container is verified once per
// container for all requests sharing the cache.
func (e *Engine) Verify(req Request, cache *ContainerCache, authorize AuthorizeFunc) (res *Verified, err error) {
	start := time.Now()
	defer func() {
		e.observe(req, start, err)
	}()
	defer errors.Recover(&err)

	if err := envelope.Precheck(req.Metadata, req.Signed); err != nil {
		return nil, err
	}
	if err := integrity.VerifyMetadataHash(req.Metadata.PayloadAsString, req.Metadata.Hash); err != nil {
		return nil, err
	}

	var c *rules.Container
	if cache != nil {
		c, err = cache.Container(req.Rules)
	} else {
		c, err = e.VerifyContainer(req.Rules)
	}
	if err != nil {
		return nil, err
	}

	hash, err := integrity.VerifyHashInSignedHashes(req.Metadata.Hash, req.Metadata.PayloadAsString, req.Signed.Signatures, req.Strategies)
	if err != nil {
		return nil, err
	}
	if err := authorize(c, hash); err != nil {
		return nil, err
	}
	return &Verified{Container: c, Hash: hash}, nil
}

// observe writes the result of a verification to the logger and metrics.
// Failures are logged at info level, successes at debug level.
func (e *Engine) observe(req Request, start time.Time, err error) {
	e.metrics.observeVerification(req.Kind, err)

	logger := e.logger.With(
		"kind", req.Kind,
		"id", req.ID,
		"duration", time.Since(start)/time.Microsecond)
	if err != nil {
		logger.Info("Verification failed", "err", err)
	} else {
		logger.Debug("Verification succeeded")
	}
}

// Batch calls fn for every index in [0, n). Calls run in parallel, limited
// by the configured batch concurrency, and share one container cache.
func (e *Engine) Batch(n int, fn func(i int, cache *ContainerCache)) error {
	cache, err := e.NewContainerCache()
	if err != nil {
		return err
	}
	var g errgroup.Group
	g.SetLimit(e.conf.BatchConcurrency)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i, cache)
			return nil
		})
	}
	return g.Wait()
}

package whitelist

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/integrity"
	"github.com/iov-one/whitelist/rules"
	"github.com/iov-one/whitelist/threshold"
	"github.com/iov-one/whitelist/weavetest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

type fixture struct {
	conf   Config
	admins []*weavetest.Key
	user   *weavetest.Key
	rules  envelope.Rules
}

// newFixture returns a configuration of three SuperAdmins, two of which
// endorsed a container. The container lets user u1 approve anything alone.
func newFixture(t testing.TB) *fixture {
	admins, pems := weavetest.SuperAdmins(t, 3)
	user := weavetest.NewKey(t)
	b := weavetest.NewContainer().
		WithUser("u1", user).
		WithGroup("g1", "u1").
		WithContractRules("Any", "Any", weavetest.Path(weavetest.Threshold("g1", 1))).
		WithTimestamp(1600000000)

	return &fixture{
		conf:   Config{SuperAdminKeys: pems, MinValidSignatures: 2},
		admins: admins,
		user:   user,
		rules: envelope.Rules{
			RulesContainer:  b.Encode(t),
			RulesSignatures: weavetest.Endorse(t, b.Bytes(t), admins[0], admins[1]),
		},
	}
}

func (f *fixture) engine(t testing.TB) *Engine {
	e, err := NewEngine(f.conf)
	require.NoError(t, err)
	return e
}

func (f *fixture) request(t testing.TB, payload string) Request {
	hash := integrity.SHA256Hex(payload)
	return Request{
		Kind:     "test",
		ID:       "req-1",
		Metadata: &envelope.Metadata{Hash: hash, PayloadAsString: payload},
		Rules:    f.rules,
		Signed: &envelope.SignedPayload{
			Signatures: []envelope.Signature{weavetest.Sign(t, "u1", f.user, hash)},
		},
	}
}

// authorizer evaluates the contract rules of the container against the
// request signatures.
func authorizer(req Request) AuthorizeFunc {
	return func(c *rules.Container, hash string) error {
		paths, err := threshold.ResolveContract(c, rules.Scope{Blockchain: "ETH", Network: "mainnet"})
		if err != nil {
			return err
		}
		return threshold.Evaluate(paths, c, req.Signed.Signatures, hash)
	}
}

func TestEngineVerify(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	req := f.request(t, `{"name":"token"}`)
	res, err := e.Verify(req, nil, authorizer(req))
	require.NoError(t, err)
	assert.Equal(t, req.Metadata.Hash, res.Hash)
	require.NotNil(t, res.Container)
	assert.Equal(t, int64(1600000000), res.Container.Timestamp.Unix())
}

func TestEngineVerifyStepOrder(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)
	const payload = `{"name":"token"}`

	cases := map[string]struct {
		mutate        func(*Request)
		authorize     AuthorizeFunc
		wantErr       *errors.Error
		wantAuthorize bool
	}{
		"empty payload": {
			mutate:  func(r *Request) { r.Metadata.PayloadAsString = "" },
			wantErr: errors.ErrValidation,
		},
		"no signatures": {
			mutate:  func(r *Request) { r.Signed.Signatures = nil },
			wantErr: errors.ErrValidation,
		},
		"hash does not match payload": {
			mutate:  func(r *Request) { r.Metadata.PayloadAsString = `{"name":"other"}` },
			wantErr: errors.ErrIntegrity,
		},
		"container not endorsed enough": {
			mutate: func(r *Request) {
				raw, _ := rules.DecodeBase64(r.Rules.RulesContainer)
				r.Rules.RulesSignatures = weavetest.Endorse(t, raw, f.admins[2])
			},
			wantErr: errors.ErrIntegrity,
		},
		"malformed container signatures": {
			mutate:  func(r *Request) { r.Rules.RulesSignatures = "###" },
			wantErr: errors.ErrDecode,
		},
		"hash not signed": {
			mutate: func(r *Request) {
				r.Signed.Signatures = []envelope.Signature{weavetest.Sign(t, "u1", f.user, "ff")}
			},
			wantErr: errors.ErrIntegrity,
		},
		"authorization fails": {
			authorize: func(*rules.Container, string) error {
				return errors.Wrap(errors.ErrNotFound, "no rules")
			},
			wantErr:       errors.ErrNotFound,
			wantAuthorize: true,
		},
		"authorization panics": {
			authorize:     func(*rules.Container, string) error { panic("boom") },
			wantErr:       errors.ErrPanic,
			wantAuthorize: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			req := f.request(t, payload)
			if tc.mutate != nil {
				tc.mutate(&req)
			}
			authorize := tc.authorize
			if authorize == nil {
				authorize = authorizer(req)
			}
			var called bool
			_, err := e.Verify(req, nil, func(c *rules.Container, hash string) error {
				called = true
				return authorize(c, hash)
			})
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			assert.Equal(t, tc.wantAuthorize, called)
		})
	}
}

func TestEngineVerifyLegacyHash(t *testing.T) {
	f := newFixture(t)
	e := f.engine(t)

	const (
		current = `{"name":"token","kind":"erc20"}`
		legacy  = `{"name":"token"}`
	)
	req := f.request(t, current)
	req.Signed.Signatures = []envelope.Signature{weavetest.Sign(t, "u1", f.user, integrity.SHA256Hex(legacy))}
	req.Strategies = []integrity.LegacyStrategy{{
		Name:      "drop kind",
		Transform: func(p string) string { return strings.Replace(p, `,"kind":"erc20"`, "", 1) },
	}}

	var authorized string
	res, err := e.Verify(req, nil, func(c *rules.Container, hash string) error {
		authorized = hash
		return authorizer(req)(c, hash)
	})
	require.NoError(t, err)
	assert.Equal(t, integrity.SHA256Hex(legacy), res.Hash)
	assert.Equal(t, res.Hash, authorized)
}

func TestEngineLogging(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	e := f.engine(t).WithLogger(log.NewTMLogger(&buf))

	req := f.request(t, `{"name":"token"}`)
	_, err := e.Verify(req, nil, authorizer(req))
	require.NoError(t, err)

	bad := f.request(t, `{"name":"token"}`)
	bad.Signed.Signatures[0].Hashes = []string{"ff"}
	_, err = e.Verify(bad, nil, authorizer(bad))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "Verification failed")
	assert.Contains(t, out, "module=whitelist")
	assert.NotContains(t, out, req.Metadata.Hash)
	assert.NotContains(t, out, req.Signed.Signatures[0].Signature)
	assert.NotContains(t, out, bad.Signed.Signatures[0].Signature)
}

func TestEngineMetrics(t *testing.T) {
	f := newFixture(t)
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	e := f.engine(t).WithMetrics(m)

	req := f.request(t, `{"name":"token"}`)
	_, err = e.Verify(req, nil, authorizer(req))
	require.NoError(t, err)

	req.Metadata.Hash = "00"
	_, err = e.Verify(req, nil, authorizer(req))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.verifications.WithLabelValues("test", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verifications.WithLabelValues("test", "integrity")))

	_, err = NewMetrics(reg)
	assert.True(t, errors.ErrValidation.Is(err), "counters registered twice")

	var nilMetrics *Metrics
	nilMetrics.observeVerification("test", nil)
	nilMetrics.observeCache(cacheHit)
}

func TestResultLabel(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"success":    {err: nil, want: "ok"},
		"decode":     {err: errors.Wrap(errors.ErrDecode, "x"), want: "decode"},
		"integrity":  {err: errors.ErrIntegrity, want: "integrity"},
		"validation": {err: errors.ErrValidation, want: "validation"},
		"not found":  {err: errors.ErrNotFound, want: "not_found"},
		"panic":      {err: errors.ErrPanic, want: "panic"},
		"unknown":    {err: errors.Append(nil, assert.AnError), want: "other"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, resultLabel(tc.err))
		})
	}
}

func TestNewEngineInvalidConfig(t *testing.T) {
	_, err := NewEngine(Config{MinValidSignatures: 1})
	assert.True(t, errors.ErrValidation.Is(err))
}

func TestBatch(t *testing.T) {
	f := newFixture(t)
	f.conf.BatchConcurrency = 2
	e := f.engine(t)

	var (
		mu       sync.Mutex
		seen     = make(map[int]int)
		caches   = make(map[*ContainerCache]struct{})
		inFlight int32
		maxSeen  int32
	)
	err := e.Batch(20, func(i int, cache *ContainerCache) {
		n := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			old := atomic.LoadInt32(&maxSeen)
			if n <= old || atomic.CompareAndSwapInt32(&maxSeen, old, n) {
				break
			}
		}

		mu.Lock()
		seen[i]++
		caches[cache] = struct{}{}
		mu.Unlock()
	})
	require.NoError(t, err)

	assert.Len(t, seen, 20)
	for i, n := range seen {
		assert.Equal(t, 1, n, "index %d", i)
	}
	assert.Len(t, caches, 1)
	assert.True(t, maxSeen <= 2, "at most 2 calls in parallel, got %d", maxSeen)
}

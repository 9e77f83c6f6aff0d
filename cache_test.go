package whitelist

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/integrity"
	"github.com/iov-one/whitelist/rules"
	"github.com/iov-one/whitelist/weavetest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tendermint/tendermint/libs/log"
)

// verifyCounter counts rules container verifications by watching the engine
// debug log.
type verifyCounter struct {
	log.Logger
	n *int32
}

func newVerifyCounter() verifyCounter {
	return verifyCounter{Logger: log.NewNopLogger(), n: new(int32)}
}

func (c verifyCounter) Debug(msg string, keyvals ...interface{}) {
	if msg == "Rules container verified" {
		atomic.AddInt32(c.n, 1)
	}
}

func (c verifyCounter) With(keyvals ...interface{}) log.Logger {
	return c
}

func (c verifyCounter) count() int {
	return int(atomic.LoadInt32(c.n))
}

func TestContainerCache(t *testing.T) {
	Convey("Given an engine with a batch cache", t, func() {
		f := newFixture(t)
		counter := newVerifyCounter()
		metrics, err := NewMetrics(prometheus.NewRegistry())
		So(err, ShouldBeNil)
		e := f.engine(t).WithLogger(counter).WithMetrics(metrics)
		cache, err := e.NewContainerCache()
		So(err, ShouldBeNil)

		Convey("A container is verified once for many envelopes", func() {
			for i := 0; i < 5; i++ {
				c, err := cache.Container(f.rules)
				So(err, ShouldBeNil)
				So(c, ShouldNotBeNil)
			}
			So(counter.count(), ShouldEqual, 1)
			So(cache.Len(), ShouldEqual, 1)
			So(testutil.ToFloat64(metrics.cache.WithLabelValues(cacheMiss)), ShouldEqual, 1)
			So(testutil.ToFloat64(metrics.cache.WithLabelValues(cacheHit)), ShouldEqual, 4)
		})

		Convey("Concurrent requests verify a container once", func() {
			var wg sync.WaitGroup
			errs := make([]error, 32)
			for i := range errs {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, errs[i] = cache.Container(f.rules)
				}(i)
			}
			wg.Wait()

			for _, err := range errs {
				So(err, ShouldBeNil)
			}
			So(counter.count(), ShouldEqual, 1)
		})

		Convey("The supplied container hash is used as the key", func() {
			withHash := f.rules
			withHash.RulesContainerHash = "ABC"
			_, err := cache.Container(withHash)
			So(err, ShouldBeNil)

			withHash.RulesContainerHash = " abc "
			_, err = cache.Container(withHash)
			So(err, ShouldBeNil)
			So(counter.count(), ShouldEqual, 1)

			Convey("And another container under the same hash is rejected", func() {
				other := weavetest.NewContainer().WithTimestamp(7)
				forged := envelope.Rules{
					RulesContainer:     other.Encode(t),
					RulesSignatures:    weavetest.Endorse(t, other.Bytes(t), f.admins...),
					RulesContainerHash: "abc",
				}
				_, err := cache.Container(forged)
				So(errors.ErrIntegrity.Is(err), ShouldBeTrue)
				So(testutil.ToFloat64(metrics.cache.WithLabelValues(cacheMismatch)), ShouldEqual, 1)
			})
		})

		Convey("Without a supplied hash the container digest is the key", func() {
			So(cacheKey(f.rules), ShouldEqual, integrity.SHA256Hex(f.rules.RulesContainer))

			other := weavetest.NewContainer().WithTimestamp(7)
			second := envelope.Rules{
				RulesContainer:  other.Encode(t),
				RulesSignatures: weavetest.Endorse(t, other.Bytes(t), f.admins...),
			}
			_, err := cache.Container(f.rules)
			So(err, ShouldBeNil)
			_, err = cache.Container(second)
			So(err, ShouldBeNil)
			So(cache.Len(), ShouldEqual, 2)
			So(counter.count(), ShouldEqual, 2)
		})

		Convey("A container failing verification is not cached", func() {
			bad := f.rules
			raw, err := rules.DecodeBase64(f.rules.RulesContainer)
			So(err, ShouldBeNil)
			bad.RulesSignatures = weavetest.Endorse(t, raw, f.admins[0])

			for i := 0; i < 2; i++ {
				_, err := cache.Container(bad)
				So(errors.ErrIntegrity.Is(err), ShouldBeTrue)
			}
			So(cache.Len(), ShouldEqual, 0)

			Convey("And a valid request for the same container still succeeds", func() {
				_, err := cache.Container(f.rules)
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given a cache of a single container", t, func() {
		f := newFixture(t)
		f.conf.ContainerCacheSize = 1
		cache, err := f.engine(t).NewContainerCache()
		So(err, ShouldBeNil)

		Convey("Older containers are evicted", func() {
			other := weavetest.NewContainer().WithTimestamp(9)
			second := envelope.Rules{
				RulesContainer:  other.Encode(t),
				RulesSignatures: weavetest.Endorse(t, other.Bytes(t), f.admins...),
			}
			_, err := cache.Container(f.rules)
			So(err, ShouldBeNil)
			_, err = cache.Container(second)
			So(err, ShouldBeNil)
			So(cache.Len(), ShouldEqual, 1)
		})
	})
}

package whitelist

import (
	"github.com/iov-one/whitelist/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts verification outcomes. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	verifications *prometheus.CounterVec
	cache         *prometheus.CounterVec
}

// NewMetrics creates verification counters and registers them with reg.
// Counters are not registered if reg is nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whitelist",
			Name:      "verifications_total",
			Help:      "Number of verified envelopes by kind and result.",
		}, []string{"kind", "result"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whitelist",
			Name:      "container_cache_total",
			Help:      "Number of rules container cache lookups by result.",
		}, []string{"result"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.verifications, m.cache} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrapf(errors.ErrValidation, "cannot register metrics: %s", err)
		}
	}
	return m, nil
}

func (m *Metrics) observeVerification(kind string, err error) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(kind, resultLabel(err)).Inc()
}

func (m *Metrics) observeCache(result string) {
	if m == nil {
		return
	}
	m.cache.WithLabelValues(result).Inc()
}

// resultLabel returns a low cardinality label for the outcome of a
// verification.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.ErrDecode.Is(err):
		return "decode"
	case errors.ErrIntegrity.Is(err):
		return "integrity"
	case errors.ErrValidation.Is(err):
		return "validation"
	case errors.ErrNotFound.Is(err):
		return "not_found"
	case errors.ErrPanic.Is(err):
		return "panic"
	default:
		return "other"
	}
}

package whitelist

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/integrity"
	"github.com/iov-one/whitelist/rules"
	"golang.org/x/sync/singleflight"
)

const (
	cacheHit      = "hit"
	cacheMiss     = "miss"
	cacheMismatch = "mismatch"
)

// ContainerCache keeps verified rules containers keyed by container hash.
// A container is verified at most once at a time, concurrent requests for
// the same hash wait for the first one. Failed verifications are not
// cached.
type ContainerCache struct {
	engine  *Engine
	entries *lru.Cache
	flight  singleflight.Group
}

type cacheEntry struct {
	blob      string
	container *rules.Container
}

// NewContainerCache returns an empty cache of the configured size.
func (e *Engine) NewContainerCache() (*ContainerCache, error) {
	entries, err := lru.New(e.conf.ContainerCacheSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrValidation, err.Error())
	}
	return &ContainerCache{engine: e, entries: entries}, nil
}

// Container returns the verified and decoded rules container.
//
// The cache key is the supplied container hash, or the SHA-256 of the
// container when no hash is supplied. A cached container is only returned
// if it was verified from the same encoded blob.
func (c *ContainerCache) Container(r envelope.Rules) (*rules.Container, error) {
	key := cacheKey(r)
	if v, ok := c.entries.Get(key); ok {
		return c.match(v.(*cacheEntry), r, cacheHit)
	}

	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		if v, ok := c.entries.Get(key); ok {
			return v, nil
		}
		container, err := c.engine.VerifyContainer(r)
		if err != nil {
			return nil, err
		}
		entry := &cacheEntry{blob: r.RulesContainer, container: container}
		c.entries.Add(key, entry)
		return entry, nil
	})
	if err != nil {
		c.engine.metrics.observeCache(cacheMiss)
		return nil, err
	}
	return c.match(v.(*cacheEntry), r, cacheMiss)
}

func (c *ContainerCache) match(entry *cacheEntry, r envelope.Rules, result string) (*rules.Container, error) {
	if entry.blob != r.RulesContainer {
		c.engine.metrics.observeCache(cacheMismatch)
		return nil, errors.Wrap(errors.ErrIntegrity, "rules container differs from the cached container of the same hash")
	}
	c.engine.metrics.observeCache(result)
	c.engine.logger.Debug("Rules container cache", "result", result)
	return entry.container, nil
}

// Len returns the number of cached containers.
func (c *ContainerCache) Len() int {
	return c.entries.Len()
}

func cacheKey(r envelope.Rules) string {
	if h := integrity.NormalizeHash(r.RulesContainerHash); h != "" {
		return h
	}
	return integrity.SHA256Hex(r.RulesContainer)
}

package whitelist

import (
	"fmt"
	"io/ioutil"

	"github.com/iov-one/whitelist/crypto"
	"github.com/iov-one/whitelist/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultContainerCacheSize is the number of verified rules containers
	// kept by a batch cache.
	DefaultContainerCacheSize = 128
	// DefaultBatchConcurrency is the number of envelopes of a batch that
	// are verified in parallel.
	DefaultBatchConcurrency = 8
)

// Config is the verifier configuration. It is read once when the engine is
// created.
type Config struct {
	// SuperAdminKeys are PEM encoded public keys allowed to endorse a rules
	// container.
	SuperAdminKeys []string `yaml:"superAdminKeys" json:"superAdminKeys"`
	// MinValidSignatures is the number of distinct SuperAdmin endorsements
	// a rules container must carry.
	MinValidSignatures int `yaml:"minValidSignatures" json:"minValidSignatures"`
	// ContainerCacheSize defaults to DefaultContainerCacheSize when zero.
	ContainerCacheSize int `yaml:"containerCacheSize" json:"containerCacheSize"`
	// BatchConcurrency defaults to DefaultBatchConcurrency when zero.
	BatchConcurrency int `yaml:"batchConcurrency" json:"batchConcurrency"`
}

// Validate returns an error if the configuration cannot be used to verify
// envelopes. Each problem is reported as a field error.
func (c Config) Validate() error {
	var errs error
	if len(c.SuperAdminKeys) == 0 {
		errs = errors.AppendField(errs, "SuperAdminKeys", errors.Wrap(errors.ErrValidation, "required"))
	}
	for i, k := range c.SuperAdminKeys {
		if _, err := crypto.ParsePublicKey([]byte(k)); err != nil {
			errs = errors.AppendField(errs, fmt.Sprintf("SuperAdminKeys.%d", i), err)
		}
	}
	if c.MinValidSignatures <= 0 {
		errs = errors.AppendField(errs, "MinValidSignatures", errors.Wrap(errors.ErrValidation, "must be positive"))
	}
	if c.ContainerCacheSize < 0 {
		errs = errors.AppendField(errs, "ContainerCacheSize", errors.Wrap(errors.ErrValidation, "must not be negative"))
	}
	if c.BatchConcurrency < 0 {
		errs = errors.AppendField(errs, "BatchConcurrency", errors.Wrap(errors.ErrValidation, "must not be negative"))
	}
	return errs
}

func (c Config) withDefaults() Config {
	if c.ContainerCacheSize == 0 {
		c.ContainerCacheSize = DefaultContainerCacheSize
	}
	if c.BatchConcurrency == 0 {
		c.BatchConcurrency = DefaultBatchConcurrency
	}
	return c
}

// LoadConfig reads a YAML or JSON configuration file. The loaded
// configuration is validated.
func LoadConfig(path string) (Config, error) {
	var c Config
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(errors.ErrNotFound, "cannot read config %q: %s", path, err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, errors.Wrapf(errors.ErrDecode, "cannot parse config %q: %s", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, errors.Wrapf(err, "config %q", path)
	}
	return c.withDefaults(), nil
}

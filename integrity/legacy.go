package integrity

import (
	"regexp"

	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
)

// LegacyStrategy rebuilds the payload string as it looked before the schema
// gained optional fields. Transform must be a pure string function: the
// historical signatures were computed over exact bytes, so payloads are
// never parsed and re-serialized.
type LegacyStrategy struct {
	Name      string
	Transform func(payload string) string
}

// RemovePattern returns a strategy deleting every match of re.
func RemovePattern(name string, re *regexp.Regexp) LegacyStrategy {
	return LegacyStrategy{
		Name: name,
		Transform: func(payload string) string {
			return re.ReplaceAllString(payload, "")
		},
	}
}

// Chain returns a strategy applying all given strategies in order.
func Chain(name string, strategies ...LegacyStrategy) LegacyStrategy {
	return LegacyStrategy{
		Name: name,
		Transform: func(payload string) string {
			for _, s := range strategies {
				payload = s.Transform(payload)
			}
			return payload
		},
	}
}

// VerifyHashInSignedHashes ensures that the hash was approved by at least
// one signature and returns the hash that must be used by all following
// verification steps.
//
// If the claimed hash is not covered by any signature, each strategy is
// applied to the payload in order. Candidates equal to the payload or to
// an already tried candidate are skipped. The hash of the first candidate
// covered by a signature is returned.
func VerifyHashInSignedHashes(
	claimedHash, payloadAsString string,
	sigs []envelope.Signature,
	strategies []LegacyStrategy,
) (string, error) {
	hash := NormalizeHash(claimedHash)
	if hash != "" && covered(hash, sigs) {
		return hash, nil
	}

	tried := map[string]struct{}{payloadAsString: {}}
	for _, s := range strategies {
		candidate := s.Transform(payloadAsString)
		if _, ok := tried[candidate]; ok {
			continue
		}
		tried[candidate] = struct{}{}

		if h := SHA256Hex(candidate); covered(h, sigs) {
			return h, nil
		}
	}
	return "", errors.Wrapf(errors.ErrIntegrity,
		"hash not signed by any of %d signatures, %d legacy variants tried",
		len(sigs), len(tried)-1)
}

func covered(hash string, sigs []envelope.Signature) bool {
	for i := range sigs {
		if sigs[i].Covers(hash) {
			return true
		}
	}
	return false
}

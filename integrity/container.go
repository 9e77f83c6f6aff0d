package integrity

import (
	"github.com/iov-one/whitelist/crypto"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules"
)

// VerifyRulesContainerSignatures ensures that the rules container carries at
// least minValid signatures made by the SuperAdmin keys. It returns the raw
// container bytes.
//
// The keys form a flat pool: a signature is valid if any key verifies it,
// and one key may account for several signatures. A signature repeated byte
// for byte in the blob is counted once.
func VerifyRulesContainerSignatures(
	rulesContainer, rulesSignatures string,
	superAdmins []crypto.PublicKey,
	minValid int,
) ([]byte, error) {
	if minValid <= 0 {
		return nil, errors.Wrapf(errors.ErrValidation, "minimum valid signatures must be positive, got %d", minValid)
	}
	raw, err := rules.DecodeBase64(rulesContainer)
	if err != nil {
		return nil, errors.Wrap(err, "rules container")
	}
	sigs, err := rules.DecodeSignatures(rulesSignatures)
	if err != nil {
		return nil, err
	}

	counted := make(map[string]struct{}, len(sigs))
	var valid int
	for _, sig := range sigs {
		if _, ok := counted[string(sig.Signature)]; ok {
			continue
		}
		if !verifiedByAny(superAdmins, raw, sig.Signature) {
			continue
		}
		counted[string(sig.Signature)] = struct{}{}
		valid++
		if valid >= minValid {
			return raw, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrIntegrity,
		"rules container has %d valid SuperAdmin signatures, %d required", valid, minValid)
}

func verifiedByAny(keys []crypto.PublicKey, message, sig []byte) bool {
	for _, key := range keys {
		if key != nil && key.Verify(message, sig) {
			return true
		}
	}
	return false
}

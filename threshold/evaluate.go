package threshold

import (
	"github.com/iov-one/whitelist/envelope"
	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/rules"
)

// Evaluate returns nil if the signatures satisfy at least one of the paths.
//
// A signature counts toward a group threshold only if its signer is a
// member of the group, it covers hash and it verifies with the key the
// signer registered in the container. A signature is verified over the
// canonical encoding of its own hash list. Each signer counts once per
// group threshold.
//
// If no path is satisfied, the returned ErrIntegrity lists the reason each
// path failed.
func Evaluate(
	paths []rules.SequentialThresholds,
	c *rules.Container,
	sigs []envelope.Signature,
	hash string,
) error {
	if len(paths) == 0 {
		return errors.Wrap(errors.ErrNotFound, "no threshold paths")
	}
	if c == nil {
		return errors.Wrap(errors.ErrNotFound, "no rules container")
	}

	ev := evaluator{container: c, sigs: sigs, hash: hash, verified: make(map[int]bool)}
	var failures error
	for i, path := range paths {
		err := ev.path(path)
		if err == nil {
			return nil
		}
		failures = errors.Append(failures, errors.Wrapf(err, "path %d", i))
	}
	return errors.Wrap(failures, "no authorization path satisfied")
}

type evaluator struct {
	container *rules.Container
	sigs      []envelope.Signature
	hash      string
	// verified memoizes the verification result per signature index.
	verified map[int]bool
}

func (ev *evaluator) path(path rules.SequentialThresholds) error {
	if len(path) == 0 {
		return errors.Wrap(errors.ErrIntegrity, "no group thresholds")
	}
	for _, gt := range path {
		if err := ev.group(gt); err != nil {
			return err
		}
	}
	return nil
}

func (ev *evaluator) group(gt rules.GroupThreshold) error {
	group, ok := ev.container.Group(gt.GroupID)
	if !ok {
		return errors.Wrapf(errors.ErrIntegrity, "group %q not found", gt.GroupID)
	}
	if gt.MinimumSignatures <= 0 {
		return nil
	}
	if len(group.UserIDs) == 0 {
		return errors.Wrapf(errors.ErrIntegrity,
			"group %q has no members, %d signatures required", gt.GroupID, gt.MinimumSignatures)
	}

	signers := make(map[string]struct{})
	for i := range ev.sigs {
		sig := &ev.sigs[i]
		if _, ok := signers[sig.UserID]; ok {
			continue
		}
		if !group.HasMember(sig.UserID) || !sig.Covers(ev.hash) {
			continue
		}
		if !ev.valid(i) {
			continue
		}
		signers[sig.UserID] = struct{}{}
		if len(signers) >= gt.MinimumSignatures {
			return nil
		}
	}
	return errors.Wrapf(errors.ErrIntegrity,
		"group %q has %d valid signatures, %d required", gt.GroupID, len(signers), gt.MinimumSignatures)
}

func (ev *evaluator) valid(i int) bool {
	if ok, seen := ev.verified[i]; seen {
		return ok
	}
	ok := ev.verify(&ev.sigs[i])
	ev.verified[i] = ok
	return ok
}

func (ev *evaluator) verify(sig *envelope.Signature) bool {
	user, ok := ev.container.User(sig.UserID)
	if !ok {
		return false
	}
	key, err := user.PublicKey()
	if err != nil || key == nil {
		return false
	}
	raw, err := sig.Decode()
	if err != nil {
		return false
	}
	msg, err := sig.SignedMessage()
	if err != nil {
		return false
	}
	return key.Verify(msg, raw)
}

/*
Package envelope defines the parts shared by every signed whitelist envelope
received from the transport layer: metadata with the claimed hash and the
canonical payload string, the signed payload block with the per-user
signatures, the rules container reference and the audit trail.

Values of this package are never trusted on their own. Only the verifiers in
the x/ packages may turn an envelope into a domain entity.
*/
package envelope

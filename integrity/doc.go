/*
Package integrity implements the cryptographic gates of whitelist
verification.

VerifyMetadataHash binds the claimed hash to the canonical payload string.
VerifyHashInSignedHashes checks that the hash was approved by at least one
user, falling back to an ordered list of legacy payload shapes for hashes
signed before the payload schema gained optional fields.
VerifyRulesContainerSignatures checks the SuperAdmin endorsement of a rules
container.

Errors returned by this package never contain hash or signature material.
*/
package integrity

/*
Package crypto implements public key parsing and signature verification for
rule users and SuperAdmin keys.

Keys are exchanged as PEM encoded PKIX structures. Three algorithms are
supported: ECDSA over P-256, Ed25519 and ECDSA over secp256k1. ECDSA
signatures are computed over the SHA-256 digest of the message, Ed25519
signatures over the message itself.
*/
package crypto

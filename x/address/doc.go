/*
Package address verifies whitelisted addresses.

An address envelope carries the address payload, the users' approvals of
its hash and the rules container the approvals are evaluated against. A
WhitelistedAddress is only ever built from a payload that passed the whole
verification.

Address rules may override their default thresholds for addresses linked to
a single internal wallet, see threshold.ResolveAddress.
*/
package address

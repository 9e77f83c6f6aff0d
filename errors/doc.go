/*
Package errors implements the error classification used by the whitelist
verification engine.

Every failure returned by the engine wraps exactly one of the root errors
declared in this package. Root errors carry a code that is unique within
the process and a short description. Use Wrap or Wrapf to add context while
keeping the root cause testable with the Is method:

	if errors.ErrIntegrity.Is(err) {
		// not authorized
	}

Error messages must never include hash, payload or signature material.
Describe a failure with identifiers, indexes and counts only.

If a package needs a custom root error, declare it with Register during
program startup.
*/
package errors

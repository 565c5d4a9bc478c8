package service

import "errors"

var (
	// ErrPolicyNotMet is the fail-fast local outcome for a secret that
	// cannot satisfy the strength policy. Proving is never attempted.
	ErrPolicyNotMet = errors.New("policy not met")

	// ErrIntegrityMismatch is the fail-fast local outcome when a plaintext
	// does not hash to the committed digest. Proving is never attempted.
	ErrIntegrityMismatch = errors.New("integrity mismatch")

	// ErrSessionClosed means the vault session's key material was already
	// zeroized.
	ErrSessionClosed = errors.New("vault session closed")

	// ErrAnchorBehindBundle means the anchored locator does not point at
	// the bundle being verified.
	ErrAnchorBehindBundle = errors.New("anchor does not reference bundle")
)

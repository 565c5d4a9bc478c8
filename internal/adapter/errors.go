package adapter

import "errors"

var (
	// ErrSigningUnavailable means no signer is reachable (no connected
	// wallet or session).
	ErrSigningUnavailable = errors.New("signing unavailable")

	// ErrSigningRejected means the user declined the signature request.
	ErrSigningRejected = errors.New("signing rejected by user")

	// ErrNotFound means the locator resolves to nothing.
	ErrNotFound = errors.New("blob not found")

	// ErrStorageUnavailable is a transient storage transport failure,
	// eligible for bounded retry.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrChainUnavailable is a transient ledger transport failure.
	ErrChainUnavailable = errors.New("chain unavailable")

	// ErrStaleVersion means the ledger advanced past the version the
	// writer observed; the caller must re-read and retry deliberately.
	ErrStaleVersion = errors.New("stale anchor version")

	// ErrNoAnchor means the owner has no anchored commitment yet.
	ErrNoAnchor = errors.New("no anchor for owner")

	// ErrUnauthorized means the gateway session token is missing/expired.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrLocatorMismatch means the store returned a locator that does not
	// match the locally computed content address of the uploaded bytes.
	ErrLocatorMismatch = errors.New("storage returned mismatching locator")
)

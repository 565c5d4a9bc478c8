package models

import "time"

// Anchor is the owner-scoped, monotonically versioned on-chain record that
// binds an item commitment to the content address of its encrypted bundle.
//
// Versions for a given owner never decrease. A verifier that has observed
// version N must reject any anchor for the same owner with a lower version
// (rollback protection).
type Anchor struct {
	// OwnerAddress scopes the anchor; versions are per owner.
	OwnerAddress string `json:"owner_address"`

	// Version is assigned by the ledger on write and increases by one per
	// accepted write.
	Version int64 `json:"version"`

	// Commitment is the hex keccak256 item commitment.
	Commitment string `json:"commitment"`

	// Locator is the content address of the stored VaultItemCipher bundle.
	Locator string `json:"locator"`

	AnchoredAt time.Time `json:"anchored_at"`
}

// AnchorHistoryFilter narrows an anchor history query. The zero value means
// "everything for the owner, newest first".
type AnchorHistoryFilter struct {
	// OwnerAddress is required; history is always owner-scoped.
	OwnerAddress string `json:"owner_address"`

	// SinceVersion, when positive, restricts the result to anchors with a
	// strictly higher version.
	SinceVersion int64 `json:"since_version,omitempty"`

	// Limit, when positive, caps the number of returned rows.
	Limit uint64 `json:"limit,omitempty"`
}

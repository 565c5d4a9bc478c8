package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/veilvault/veilvault/models"
)

// Signer is the wallet/identity collaborator. Sign may suspend for user
// approval; a user-rejected request surfaces ErrSigningRejected, not a
// timeout.
type Signer interface {
	// Sign produces the raw signature over the application's versioned
	// message string. For a fixed message the output is deterministic,
	// which is what makes signature-derived vault keys re-derivable.
	Sign(ctx context.Context, message string) ([]byte, error)

	// OwnerAddress is the address the signatures belong to.
	OwnerAddress() string

	// PublicKey is the verification key, used once at gateway registration.
	PublicKey() []byte
}

// BlobStore is the content-addressed storage collaborator. The locator is a
// deterministic function of the stored bytes, so retrieval yields exactly
// what was stored or fails.
type BlobStore interface {
	// Put uploads a bundle and returns its content address. Never invents
	// a locator on failure: a fake locator would silently break the
	// content-addressing invariant the commitments depend on.
	Put(ctx context.Context, blob []byte) (string, error)

	// Get fetches the bytes behind locator. Fails with ErrNotFound or
	// ErrStorageUnavailable.
	Get(ctx context.Context, locator string) ([]byte, error)
}

// AnchorLedger is the on-chain collaborator holding the owner-scoped,
// monotonically versioned commitment records.
type AnchorLedger interface {
	// Read returns the latest anchor for an owner, or ErrNoAnchor.
	Read(ctx context.Context, ownerAddress string) (models.Anchor, error)

	// Write publishes a new commitment and returns the assigned version.
	// Fails with ErrStaleVersion when the ledger has moved past
	// expectedVersion, and ErrChainUnavailable on transport trouble.
	Write(ctx context.Context, commitment, locator string, expectedVersion int64) (int64, error)
}

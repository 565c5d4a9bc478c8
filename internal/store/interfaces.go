package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/veilvault/veilvault/models"
)

// AnchorRegistry is the gateway-side ledger of anchored commitments. Rows
// are append-only and owner-scoped; versions start at 1 and advance by one
// per append, enforced with compare-and-set semantics.
type AnchorRegistry interface {
	// GetLatest returns the highest-version anchor for an owner, or
	// ErrAnchorNotFound.
	GetLatest(ctx context.Context, ownerAddress string) (models.Anchor, error)

	// Append records a new anchor at expectedVersion+1 and returns the
	// assigned version. Fails with ErrVersionConflict when the registry has
	// already moved past expectedVersion.
	Append(ctx context.Context, anchor models.Anchor, expectedVersion int64) (int64, error)

	// History returns an owner's anchors, newest first, optionally starting
	// above sinceVersion and capped at limit. Used by auditors replaying an
	// owner's commitment trail.
	History(ctx context.Context, filter models.AnchorHistoryFilter) ([]models.Anchor, error)
}

// OwnerRegistry maps owner addresses to the public keys presented at first
// login. The challenge-login flow verifies signatures against these keys.
type OwnerRegistry interface {
	// Register stores the public key for an owner address. Fails with
	// ErrOwnerAlreadyRegistered when a different key is already on file.
	Register(ctx context.Context, ownerAddress string, publicKey []byte) error

	// GetPublicKey returns the registered key, or ErrOwnerNotFound.
	GetPublicKey(ctx context.Context, ownerAddress string) ([]byte, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

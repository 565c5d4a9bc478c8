package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/veilvault/veilvault/models"
)

// PolicyProofService produces and verifies zero-knowledge proofs that a
// secret satisfies the strength policy, without exposing the secret.
type PolicyProofService interface {
	// Prove checks the policy locally first (ErrPolicyNotMet, no proving
	// cost) and then generates the proof on the worker pool. Honors ctx
	// cancellation; an abandoned proof is discarded, not interrupted.
	Prove(ctx context.Context, secret []byte) (models.PolicyProof, error)

	// Verify returns true only for proofs from the expected policy
	// circuit whose predicate holds. Never errors for "predicate false".
	Verify(proof models.PolicyProof) (bool, error)
}

// IntegrityProofService produces and verifies zero-knowledge proofs that a
// decrypted plaintext matches a previously committed hash.
type IntegrityProofService interface {
	// Prove short-circuits locally when the plaintext does not hash to
	// storedHash (ErrIntegrityMismatch), then proves on the worker pool.
	Prove(ctx context.Context, plaintext []byte, storedHash []byte) (models.IntegrityProof, error)

	// Verify checks the proof against storedHash.
	Verify(proof models.IntegrityProof, storedHash []byte) (bool, error)
}

// AnchorVersionStore records the highest anchor version observed per owner.
// The verification loop uses it to reject rollbacks across process
// restarts.
type AnchorVersionStore interface {
	// LastSeen returns the recorded version and whether one exists.
	LastSeen(ctx context.Context, ownerAddress string) (int64, bool, error)

	// Record stores version if it is higher than the recorded one.
	Record(ctx context.Context, ownerAddress string, version int64) error
}

// VaultService is the client-side write/read path of the protocol.
type VaultService interface {
	// AddItem runs the full write flow: policy pre-check, encrypt, store,
	// commit, anchor. The bundle is fully constructed before anything is
	// uploaded; any failure discards it (no partial writes).
	AddItem(ctx context.Context, session *VaultSession, item models.PlaintextItem) (models.Anchor, models.VaultItemCipher, error)

	// GetItem fetches the owner's anchored bundle and decrypts it.
	GetItem(ctx context.Context, session *VaultSession) (models.PlaintextItem, models.Anchor, error)
}

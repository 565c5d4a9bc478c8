package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/veilvault/veilvault/internal/adapter"
	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/models"
)

// keyDerivationMessage is the fixed message the wallet signs to open a
// session. Combined with the adapter's versioned prefix the full signed
// string is application- and version-specific, so foreign signatures can
// never be replayed into key derivation.
const keyDerivationMessage = "key-derivation:v1"

// VaultSession owns the derived key material for a sequence of vault
// operations. It replaces any notion of process-wide key state: the caller
// decides the lifetime, and Close zeroizes the key.
//
// The key exists only in this value's memory; it is never persisted and
// never logged.
type VaultSession struct {
	mu     sync.Mutex
	key    models.KeyMaterial
	owner  string
	closed bool
}

// OpenVaultSession obtains a signature from the wallet (suspends for user
// approval; cancellable) and derives the session key from it. The signature
// itself is dropped before returning.
func OpenVaultSession(ctx context.Context, signer adapter.Signer, kdf crypto.KeyDerivation) (*VaultSession, error) {
	sig, err := signer.Sign(ctx, keyDerivationMessage)
	if err != nil {
		return nil, fmt.Errorf("obtain key-derivation signature: %w", err)
	}
	defer crypto.Zero(sig)

	key, err := kdf.Derive(sig, signer.OwnerAddress())
	if err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}

	return &VaultSession{key: key, owner: signer.OwnerAddress()}, nil
}

// Key hands out the session key material. The returned struct shares the
// underlying key bytes; they become unusable after Close.
func (s *VaultSession) Key() (models.KeyMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.KeyMaterial{}, ErrSessionClosed
	}
	return s.key, nil
}

// Owner returns the owner address the session key belongs to.
func (s *VaultSession) Owner() string { return s.owner }

// Close zeroizes the key material. Idempotent.
func (s *VaultSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.key.Zero()
	s.closed = true
}

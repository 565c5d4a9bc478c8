package adapter

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/veilvault/veilvault/internal/crypto"
)

// AuthMessagePrefix version-tags every message this application asks a
// wallet to sign, so signatures can never be replayed across applications
// or across veilvault protocol versions.
const AuthMessagePrefix = "veilvault:auth:v1:"

// localSigner is a development wallet: an in-process ed25519 key. ed25519
// signing is deterministic, which the key-derivation path depends on.
// Production deployments replace this with a real wallet bridge behind the
// same [Signer] interface.
type localSigner struct {
	priv  ed25519.PrivateKey
	owner string
}

// NewLocalSigner creates a signer with a fresh random keypair.
func NewLocalSigner() (Signer, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("generate signer seed: %w", err)
	}
	return NewLocalSignerFromSeed(seed)
}

// NewLocalSignerFromSeed creates a signer from a 32-byte seed. The owner
// address is the hex keccak256 fingerprint of the public key, "0x"-prefixed.
func NewLocalSignerFromSeed(seed []byte) (Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signer seed is %d bytes, want %d", len(seed), ed25519.SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	addr := crypto.Keccak256(pub)

	return &localSigner{
		priv:  priv,
		owner: "0x" + hex.EncodeToString(addr[12:]),
	}, nil
}

// Sign implements [Signer].
func (s *localSigner) Sign(ctx context.Context, message string) ([]byte, error) {
	if s.priv == nil {
		return nil, ErrSigningUnavailable
	}
	// A wallet bridge would suspend here for user approval; honor the
	// caller's cancellation the same way.
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrSigningRejected, ctx.Err())
	default:
	}
	return ed25519.Sign(s.priv, []byte(AuthMessagePrefix+message)), nil
}

// OwnerAddress implements [Signer].
func (s *localSigner) OwnerAddress() string { return s.owner }

// PublicKey implements [Signer].
func (s *localSigner) PublicKey() []byte {
	return []byte(s.priv.Public().(ed25519.PublicKey))
}

// VerifySignature checks a raw signature over the versioned auth message.
// The gateway uses it during challenge login.
func VerifySignature(pub ed25519.PublicKey, message string, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, []byte(AuthMessagePrefix+message), sig)
}

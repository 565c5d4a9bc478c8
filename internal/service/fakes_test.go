package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/veilvault/veilvault/internal/adapter"
	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/internal/zk"
	"github.com/veilvault/veilvault/models"
)

const (
	fakePolicyCircuit    models.CircuitID = "policy-fake"
	fakeIntegrityCircuit models.CircuitID = "integrity-fake"
)

// fakeProofBackend stands in for the Groth16 backend. It evaluates the same
// predicates natively and emits proofs its own verifier can check, so the
// service tests run in microseconds instead of seconds per proof.
type fakeProofBackend struct {
	proveIntegrityErr  error
	verifyIntegrityErr error
}

func proofBytes(digest []byte) []byte {
	return append([]byte("proof:"), digest...)
}

func (b *fakeProofBackend) ProvePolicy(secret []byte) (models.PolicyProof, error) {
	if err := CheckPolicy(secret); err != nil {
		return models.PolicyProof{}, fmt.Errorf("witness solving failed: %w", zk.ErrProverFault)
	}
	digest, err := zk.SecretDigest(secret)
	if err != nil {
		return models.PolicyProof{}, err
	}
	return models.PolicyProof{
		CircuitID:  fakePolicyCircuit,
		Proof:      proofBytes(digest),
		SecretHash: hex.EncodeToString(digest),
	}, nil
}

func (b *fakeProofBackend) VerifyPolicy(proof models.PolicyProof) (bool, error) {
	if proof.CircuitID != fakePolicyCircuit {
		return false, nil
	}
	digest, err := hex.DecodeString(proof.SecretHash)
	if err != nil {
		return false, fmt.Errorf("decode secret hash: %w", zk.ErrVerifierFault)
	}
	return bytes.Equal(proof.Proof, proofBytes(digest)), nil
}

func (b *fakeProofBackend) ProveIntegrity(plaintext []byte, storedHash []byte) (models.IntegrityProof, error) {
	if b.proveIntegrityErr != nil {
		return models.IntegrityProof{}, b.proveIntegrityErr
	}
	digest, err := zk.SecretDigest(plaintext)
	if err != nil {
		return models.IntegrityProof{}, err
	}
	if !bytes.Equal(digest, storedHash) {
		return models.IntegrityProof{}, fmt.Errorf("witness solving failed: %w", zk.ErrProverFault)
	}
	return models.IntegrityProof{
		CircuitID:  fakeIntegrityCircuit,
		Proof:      proofBytes(digest),
		StoredHash: hex.EncodeToString(storedHash),
	}, nil
}

func (b *fakeProofBackend) VerifyIntegrity(proof models.IntegrityProof, storedHash []byte) (bool, error) {
	if b.verifyIntegrityErr != nil {
		return false, b.verifyIntegrityErr
	}
	if proof.CircuitID != fakeIntegrityCircuit {
		return false, nil
	}
	if proof.StoredHash != hex.EncodeToString(storedHash) {
		return false, nil
	}
	return bytes.Equal(proof.Proof, proofBytes(storedHash)), nil
}

func (b *fakeProofBackend) PolicyCircuitID() models.CircuitID    { return fakePolicyCircuit }
func (b *fakeProofBackend) IntegrityCircuitID() models.CircuitID { return fakeIntegrityCircuit }

// memBlobStore is an in-memory content-addressed store.
type memBlobStore struct {
	mu     sync.Mutex
	blobs  map[string][]byte
	outage bool
	puts   int
	gets   int
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: map[string][]byte{}}
}

func (s *memBlobStore) Put(_ context.Context, blob []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.outage {
		return "", adapter.ErrStorageUnavailable
	}
	locator := hex.EncodeToString(crypto.BlobAddress(blob))
	s.blobs[locator] = append([]byte(nil), blob...)
	return locator, nil
}

func (s *memBlobStore) Get(_ context.Context, locator string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.outage {
		return nil, adapter.ErrStorageUnavailable
	}
	blob, ok := s.blobs[locator]
	if !ok {
		return nil, adapter.ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

// memLedger is an in-memory anchor ledger with compare-and-set versioning.
type memLedger struct {
	mu      sync.Mutex
	anchors map[string]models.Anchor
	owner   string
}

func newMemLedger(owner string) *memLedger {
	return &memLedger{anchors: map[string]models.Anchor{}, owner: owner}
}

func (l *memLedger) Read(_ context.Context, ownerAddress string) (models.Anchor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	anchor, ok := l.anchors[ownerAddress]
	if !ok {
		return models.Anchor{}, adapter.ErrNoAnchor
	}
	return anchor, nil
}

func (l *memLedger) Write(_ context.Context, commitment, locator string, expectedVersion int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current := l.anchors[l.owner].Version
	if current != expectedVersion {
		return 0, adapter.ErrStaleVersion
	}
	next := current + 1
	l.anchors[l.owner] = models.Anchor{
		OwnerAddress: l.owner,
		Version:      next,
		Commitment:   commitment,
		Locator:      locator,
	}
	return next, nil
}

// set force-installs an anchor, bypassing versioning. Used to simulate a
// compromised or rolled-back ledger.
func (l *memLedger) set(anchor models.Anchor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.anchors[anchor.OwnerAddress] = anchor
}

// memVersionStore is an in-memory AnchorVersionStore.
type memVersionStore struct {
	mu       sync.Mutex
	versions map[string]int64
}

func newMemVersionStore() *memVersionStore {
	return &memVersionStore{versions: map[string]int64{}}
}

func (s *memVersionStore) LastSeen(_ context.Context, ownerAddress string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.versions[ownerAddress]
	return v, ok, nil
}

func (s *memVersionStore) Record(_ context.Context, ownerAddress string, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version > s.versions[ownerAddress] {
		s.versions[ownerAddress] = version
	}
	return nil
}

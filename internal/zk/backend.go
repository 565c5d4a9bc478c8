// SPDX-License-Identifier: Apache-2.0

package zk

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/models"
)

//go:generate mockgen -source=backend.go -destination=../mock/zk_backend_mock.go -package=mock

// Backend is the proving collaborator consumed by the proof services.
// Proving is CPU-bound and slow (seconds); callers run it off the critical
// path through the worker pool. Verification is fast and synchronous.
type Backend interface {
	// ProvePolicy produces a proof that secret satisfies the strength
	// policy. The caller is expected to have pre-checked the policy
	// locally; a non-compliant secret reaches the prover only to fail
	// witness solving, surfaced as ErrProverFault.
	ProvePolicy(secret []byte) (models.PolicyProof, error)

	// VerifyPolicy checks a policy proof. Returns false (not an error) for
	// a well-formed proof that does not verify or that names a different
	// circuit; ErrVerifierFault only for unparseable proof bytes.
	VerifyPolicy(proof models.PolicyProof) (bool, error)

	// ProveIntegrity produces a proof that MiMC(plaintext) equals the
	// digest committed in the stored bundle.
	ProveIntegrity(plaintext []byte, storedHash []byte) (models.IntegrityProof, error)

	// VerifyIntegrity checks an integrity proof against storedHash. Error
	// semantics mirror VerifyPolicy.
	VerifyIntegrity(proof models.IntegrityProof, storedHash []byte) (bool, error)

	// PolicyCircuitID and IntegrityCircuitID name the circuits this
	// backend was set up with.
	PolicyCircuitID() models.CircuitID
	IntegrityCircuitID() models.CircuitID
}

// circuitArtifacts bundles everything needed to prove and verify one
// circuit. Immutable after setup; gnark proving is safe for concurrent use.
type circuitArtifacts struct {
	cs constraint.ConstraintSystem
	pk groth16.ProvingKey
	vk groth16.VerifyingKey
	id models.CircuitID
}

// groth16Backend is the private implementation of [Backend].
type groth16Backend struct {
	policy    *circuitArtifacts
	integrity *circuitArtifacts
	logger    *logger.Logger
}

// NewGroth16Backend compiles (or reloads from artifactDir) the policy and
// integrity circuits and runs the Groth16 setup. With an empty artifactDir
// everything is kept in memory, which is what tests use.
//
// Groth16 setup here is a development-grade single-party ceremony; swapping
// in externally produced keys only requires dropping them into artifactDir.
func NewGroth16Backend(artifactDir string, log *logger.Logger) (Backend, error) {
	policy, err := loadOrSetup(artifactDir, "policy", &PolicyCircuit{})
	if err != nil {
		return nil, fmt.Errorf("setup policy circuit: %w", err)
	}
	log.Info().Str("circuit_id", string(policy.id)).Msg("policy circuit ready")

	integrity, err := loadOrSetup(artifactDir, "integrity", &IntegrityCircuit{})
	if err != nil {
		return nil, fmt.Errorf("setup integrity circuit: %w", err)
	}
	log.Info().Str("circuit_id", string(integrity.id)).Msg("integrity circuit ready")

	return &groth16Backend{policy: policy, integrity: integrity, logger: log}, nil
}

// ProvePolicy implements [Backend].
func (b *groth16Backend) ProvePolicy(secret []byte) (models.PolicyProof, error) {
	digest, err := SecretDigest(secret)
	if err != nil {
		return models.PolicyProof{}, err
	}

	assignment := &PolicyCircuit{
		Length:     len(secret),
		SecretHash: new(big.Int).SetBytes(digest),
	}
	for i := 0; i < MaxSecretLen; i++ {
		var v byte
		if i < len(secret) {
			v = secret[i]
		}
		assignment.Secret[i] = v
	}

	proofBytes, err := prove(b.policy, assignment)
	if err != nil {
		return models.PolicyProof{}, err
	}
	return models.PolicyProof{
		CircuitID:  b.policy.id,
		Proof:      proofBytes,
		SecretHash: hex.EncodeToString(digest),
	}, nil
}

// VerifyPolicy implements [Backend].
func (b *groth16Backend) VerifyPolicy(proof models.PolicyProof) (bool, error) {
	if proof.CircuitID != b.policy.id {
		// Valid proof from some other circuit proves nothing about the
		// policy predicate.
		b.logger.Warn().Str("circuit_id", string(proof.CircuitID)).Msg("policy proof names unknown circuit")
		return false, nil
	}
	digest, err := hex.DecodeString(proof.SecretHash)
	if err != nil {
		return false, fmt.Errorf("decode secret hash: %w", ErrVerifierFault)
	}
	return verify(b.policy, proof.Proof, &PolicyCircuit{SecretHash: new(big.Int).SetBytes(digest)})
}

// ProveIntegrity implements [Backend].
func (b *groth16Backend) ProveIntegrity(plaintext []byte, storedHash []byte) (models.IntegrityProof, error) {
	if len(plaintext) == 0 {
		return models.IntegrityProof{}, ErrEmptySecret
	}
	if len(plaintext) > MaxSecretLen {
		return models.IntegrityProof{}, fmt.Errorf("plaintext is %d bytes, circuit fits %d: %w", len(plaintext), MaxSecretLen, ErrSecretTooLong)
	}

	assignment := &IntegrityCircuit{
		Length:     len(plaintext),
		StoredHash: new(big.Int).SetBytes(storedHash),
	}
	for i := 0; i < MaxSecretLen; i++ {
		var v byte
		if i < len(plaintext) {
			v = plaintext[i]
		}
		assignment.Plaintext[i] = v
	}

	proofBytes, err := prove(b.integrity, assignment)
	if err != nil {
		return models.IntegrityProof{}, err
	}
	return models.IntegrityProof{
		CircuitID:  b.integrity.id,
		Proof:      proofBytes,
		StoredHash: hex.EncodeToString(storedHash),
	}, nil
}

// VerifyIntegrity implements [Backend].
func (b *groth16Backend) VerifyIntegrity(proof models.IntegrityProof, storedHash []byte) (bool, error) {
	if proof.CircuitID != b.integrity.id {
		b.logger.Warn().Str("circuit_id", string(proof.CircuitID)).Msg("integrity proof names unknown circuit")
		return false, nil
	}
	// The claimed public input must be the digest the caller expects, not
	// just any digest the prover picked.
	if proof.StoredHash != hex.EncodeToString(storedHash) {
		return false, nil
	}
	return verify(b.integrity, proof.Proof, &IntegrityCircuit{StoredHash: new(big.Int).SetBytes(storedHash)})
}

// PolicyCircuitID implements [Backend].
func (b *groth16Backend) PolicyCircuitID() models.CircuitID { return b.policy.id }

// IntegrityCircuitID implements [Backend].
func (b *groth16Backend) IntegrityCircuitID() models.CircuitID { return b.integrity.id }

func prove(a *circuitArtifacts, assignment frontend.Circuit) ([]byte, error) {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("build witness: %w: %v", ErrProverFault, err)
	}
	proof, err := groth16.Prove(a.cs, a.pk, w)
	if err != nil {
		return nil, fmt.Errorf("groth16 prove: %w: %v", ErrProverFault, err)
	}
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize proof: %w: %v", ErrProverFault, err)
	}
	return buf.Bytes(), nil
}

func verify(a *circuitArtifacts, proofBytes []byte, publicAssignment frontend.Circuit) (bool, error) {
	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return false, fmt.Errorf("parse proof: %w", ErrVerifierFault)
	}
	pubW, err := frontend.NewWitness(publicAssignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, fmt.Errorf("build public witness: %w", ErrVerifierFault)
	}
	if err := groth16.Verify(proof, a.vk, pubW); err != nil {
		// Well-formed proof, predicate does not hold.
		return false, nil
	}
	return true, nil
}

func loadOrSetup(dir, name string, circuit frontend.Circuit) (*circuitArtifacts, error) {
	if dir != "" {
		if a, err := loadArtifacts(dir, name); err == nil {
			return a, nil
		}
	}

	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup: %w", err)
	}

	a := &circuitArtifacts{cs: cs, pk: pk, vk: vk}
	if a.id, err = circuitID(vk); err != nil {
		return nil, err
	}

	if dir != "" {
		if err := saveArtifacts(dir, name, a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func circuitID(vk groth16.VerifyingKey) (models.CircuitID, error) {
	var buf bytes.Buffer
	if _, err := vk.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("serialize verifying key: %w", err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return models.CircuitID(hex.EncodeToString(sum[:])), nil
}

func loadArtifacts(dir, name string) (*circuitArtifacts, error) {
	a := &circuitArtifacts{
		cs: groth16.NewCS(ecc.BN254),
		pk: groth16.NewProvingKey(ecc.BN254),
		vk: groth16.NewVerifyingKey(ecc.BN254),
	}

	csFile, err := os.Open(filepath.Join(dir, name+".r1cs"))
	if err != nil {
		return nil, err
	}
	defer csFile.Close()
	if _, err := a.cs.ReadFrom(csFile); err != nil {
		return nil, fmt.Errorf("read constraint system: %w", err)
	}

	pkFile, err := os.Open(filepath.Join(dir, name+".pk"))
	if err != nil {
		return nil, err
	}
	defer pkFile.Close()
	if _, err := a.pk.ReadFrom(pkFile); err != nil {
		return nil, fmt.Errorf("read proving key: %w", err)
	}

	vkFile, err := os.Open(filepath.Join(dir, name+".vk"))
	if err != nil {
		return nil, err
	}
	defer vkFile.Close()
	if _, err := a.vk.ReadFrom(vkFile); err != nil {
		return nil, fmt.Errorf("read verifying key: %w", err)
	}

	if a.id, err = circuitID(a.vk); err != nil {
		return nil, err
	}
	return a, nil
}

func saveArtifacts(dir, name string, a *circuitArtifacts) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	if err := writeArtifact(filepath.Join(dir, name+".r1cs"), a.cs); err != nil {
		return err
	}
	if err := writeArtifact(filepath.Join(dir, name+".pk"), a.pk); err != nil {
		return err
	}
	return writeArtifact(filepath.Join(dir, name+".vk"), a.vk)
}

func writeArtifact(path string, src interface {
	WriteTo(w io.Writer) (int64, error)
}) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create artifact %s: %w", path, err)
	}
	defer f.Close()
	if _, err := src.WriteTo(f); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/workers"
	"github.com/veilvault/veilvault/internal/zk"
	"github.com/veilvault/veilvault/models"
)

// integrityProofService is the private implementation of
// [IntegrityProofService].
type integrityProofService struct {
	backend zk.Backend
	pool    *workers.Pool
	timeout time.Duration
	logger  *logger.Logger
}

// NewIntegrityProofService constructs an [IntegrityProofService].
func NewIntegrityProofService(backend zk.Backend, pool *workers.Pool, timeout time.Duration, log *logger.Logger) IntegrityProofService {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &integrityProofService{backend: backend, pool: pool, timeout: timeout, logger: log}
}

// Prove implements [IntegrityProofService].
func (s *integrityProofService) Prove(ctx context.Context, plaintext []byte, storedHash []byte) (models.IntegrityProof, error) {
	digest, err := zk.SecretDigest(plaintext)
	if err != nil {
		return models.IntegrityProof{}, err
	}
	// Local short-circuit: a plaintext that does not hash to the
	// committed digest can never satisfy the circuit.
	if !bytes.Equal(digest, storedHash) {
		return models.IntegrityProof{}, fmt.Errorf("plaintext digest does not match committed hash: %w", ErrIntegrityMismatch)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	v, err := s.pool.Submit(ctx, func() (any, error) {
		return s.backend.ProveIntegrity(plaintext, storedHash)
	})
	if err != nil {
		return models.IntegrityProof{}, err
	}

	s.logger.Debug().Dur("elapsed", time.Since(started)).Msg("integrity proof generated")
	return v.(models.IntegrityProof), nil
}

// Verify implements [IntegrityProofService].
func (s *integrityProofService) Verify(proof models.IntegrityProof, storedHash []byte) (bool, error) {
	return s.backend.VerifyIntegrity(proof, storedHash)
}

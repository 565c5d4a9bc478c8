// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"time"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/workers"
	"github.com/veilvault/veilvault/internal/zk"
	"github.com/veilvault/veilvault/models"
)

// policyProofService is the private implementation of [PolicyProofService].
type policyProofService struct {
	backend zk.Backend
	pool    *workers.Pool
	timeout time.Duration
	logger  *logger.Logger
}

// NewPolicyProofService constructs a [PolicyProofService] proving on pool
// with the given per-proof timeout.
func NewPolicyProofService(backend zk.Backend, pool *workers.Pool, timeout time.Duration, log *logger.Logger) PolicyProofService {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &policyProofService{backend: backend, pool: pool, timeout: timeout, logger: log}
}

// Prove implements [PolicyProofService].
func (s *policyProofService) Prove(ctx context.Context, secret []byte) (models.PolicyProof, error) {
	// Fail fast: a non-compliant secret can never yield a passing proof,
	// so refuse before spending seconds in the prover.
	if err := CheckPolicy(secret); err != nil {
		return models.PolicyProof{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	v, err := s.pool.Submit(ctx, func() (any, error) {
		return s.backend.ProvePolicy(secret)
	})
	if err != nil {
		return models.PolicyProof{}, err
	}

	s.logger.Debug().Dur("elapsed", time.Since(started)).Msg("policy proof generated")
	return v.(models.PolicyProof), nil
}

// Verify implements [PolicyProofService].
func (s *policyProofService) Verify(proof models.PolicyProof) (bool, error) {
	return s.backend.VerifyPolicy(proof)
}

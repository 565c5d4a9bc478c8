package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/workers"
)

func testPool(t *testing.T) *workers.Pool {
	t.Helper()
	pool := workers.NewPool(1, logger.Nop())
	t.Cleanup(pool.Shutdown)
	return pool
}

func TestPolicyProofRoundTrip(t *testing.T) {
	svc := NewPolicyProofService(&fakeProofBackend{}, testPool(t), time.Minute, logger.Nop())

	proof, err := svc.Prove(context.Background(), []byte("Tr0ub4dor&3!!"))
	require.NoError(t, err)
	assert.Equal(t, fakePolicyCircuit, proof.CircuitID)
	assert.NotEmpty(t, proof.SecretHash)

	ok, err := svc.Verify(proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPolicyProofWeakSecretFailsFast(t *testing.T) {
	svc := NewPolicyProofService(&fakeProofBackend{}, testPool(t), time.Minute, logger.Nop())

	_, err := svc.Prove(context.Background(), []byte("abcabcabc"))
	require.ErrorIs(t, err, ErrPolicyNotMet)
}

func TestPolicyProofCancelled(t *testing.T) {
	svc := NewPolicyProofService(&fakeProofBackend{}, testPool(t), time.Minute, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Prove(ctx, []byte("Tr0ub4dor&3!!"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPolicyProofTamperedCircuitRejected(t *testing.T) {
	svc := NewPolicyProofService(&fakeProofBackend{}, testPool(t), time.Minute, logger.Nop())

	proof, err := svc.Prove(context.Background(), []byte("Tr0ub4dor&3!!"))
	require.NoError(t, err)

	proof.CircuitID = "someone-elses-circuit"
	ok, err := svc.Verify(proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

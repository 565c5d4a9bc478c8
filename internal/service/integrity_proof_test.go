package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilvault/veilvault/internal/logger"
	"github.com/veilvault/veilvault/internal/zk"
)

func TestIntegrityProofRoundTrip(t *testing.T) {
	svc := NewIntegrityProofService(&fakeProofBackend{}, testPool(t), time.Minute, logger.Nop())

	plaintext := []byte("Tr0ub4dor&3!!")
	digest, err := zk.SecretDigest(plaintext)
	require.NoError(t, err)

	proof, err := svc.Prove(context.Background(), plaintext, digest)
	require.NoError(t, err)
	assert.Equal(t, fakeIntegrityCircuit, proof.CircuitID)

	ok, err := svc.Verify(proof, digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIntegrityProofMismatchFailsFast(t *testing.T) {
	svc := NewIntegrityProofService(&fakeProofBackend{}, testPool(t), time.Minute, logger.Nop())

	digest, err := zk.SecretDigest([]byte("Tr0ub4dor&3!!"))
	require.NoError(t, err)

	_, err = svc.Prove(context.Background(), []byte("different-secret"), digest)
	require.ErrorIs(t, err, ErrIntegrityMismatch)
}

func TestIntegrityProofVerifyWrongDigest(t *testing.T) {
	svc := NewIntegrityProofService(&fakeProofBackend{}, testPool(t), time.Minute, logger.Nop())

	plaintext := []byte("Tr0ub4dor&3!!")
	digest, err := zk.SecretDigest(plaintext)
	require.NoError(t, err)
	other, err := zk.SecretDigest([]byte("another-secret9!"))
	require.NoError(t, err)

	proof, err := svc.Prove(context.Background(), plaintext, digest)
	require.NoError(t, err)

	ok, err := svc.Verify(proof, other)
	require.NoError(t, err)
	assert.False(t, ok)
}

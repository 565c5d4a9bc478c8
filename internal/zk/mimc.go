package zk

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// SecretDigest computes the native MiMC digest matching the in-circuit
// construction: one field element per byte slot (zero-padded to
// MaxSecretLen), followed by one element carrying the length. Keeping the
// two constructions in lockstep is what makes the public hash input of a
// proof comparable to a digest computed outside the circuit.
func SecretDigest(secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if len(secret) > MaxSecretLen {
		return nil, fmt.Errorf("secret is %d bytes, circuit fits %d: %w", len(secret), MaxSecretLen, ErrSecretTooLong)
	}

	h := mimc.NewMiMC()
	var block [mimc.BlockSize]byte
	for i := 0; i < MaxSecretLen; i++ {
		block = [mimc.BlockSize]byte{}
		if i < len(secret) {
			block[mimc.BlockSize-1] = secret[i]
		}
		if _, err := h.Write(block[:]); err != nil {
			return nil, fmt.Errorf("mimc write: %w", err)
		}
	}

	block = [mimc.BlockSize]byte{}
	binary.BigEndian.PutUint64(block[mimc.BlockSize-8:], uint64(len(secret)))
	if _, err := h.Write(block[:]); err != nil {
		return nil, fmt.Errorf("mimc write length: %w", err)
	}

	return h.Sum(nil), nil
}

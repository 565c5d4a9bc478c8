// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/veilvault/veilvault/models"
)

const (
	// kdfSaltTag domain-separates the derivation salt from every other
	// keccak use in the protocol.
	kdfSaltTag = "veilvault:kdf:salt:v1"

	// kdfInfoTag is the version-tagged HKDF info string. Bumping the
	// version changes every derived key, so it only ever moves together
	// with a full vault migration.
	kdfInfoTag = "veilvault:kdf:v1"
)

// keyDerivation is the private implementation of [KeyDerivation].
type keyDerivation struct{}

// NewKeyDerivation constructs the HKDF-based [KeyDerivation] used by the
// vault protocol:
//
//	ikm  = keccak256(signature)
//	salt = keccak256(ownerAddress ‖ kdfSaltTag)
//	key  = HKDF-keccak256(ikm, salt, kdfInfoTag)[:32]
//
// The signature must be the raw signing output over the application's
// versioned auth message, so signatures from other applications can never
// be replayed into key derivation.
func NewKeyDerivation() KeyDerivation {
	return &keyDerivation{}
}

// Derive implements [KeyDerivation].
func (d *keyDerivation) Derive(signature []byte, ownerAddress string) (models.KeyMaterial, error) {
	if len(signature) == 0 {
		return models.KeyMaterial{}, fmt.Errorf("derive key: %w", ErrInvalidSignatureFormat)
	}

	ikm := Keccak256(signature)
	salt := Keccak256([]byte(ownerAddress), []byte(kdfSaltTag))

	key := make([]byte, models.KeySize)
	r := hkdf.New(newKeccak256, ikm, salt, []byte(kdfInfoTag))
	if _, err := io.ReadFull(r, key); err != nil {
		return models.KeyMaterial{}, fmt.Errorf("hkdf expand: %w", err)
	}

	// ikm is as sensitive as the key itself.
	Zero(ikm)

	return models.KeyMaterial{
		Key:          key,
		OwnerAddress: ownerAddress,
		Salt:         salt,
		DomainTag:    kdfInfoTag,
	}, nil
}

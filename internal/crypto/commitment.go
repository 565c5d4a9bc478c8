// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// itemIDTag and commitTag freeze the hash domain and field order of the
	// two commitment constructions. Any change here is a breaking protocol
	// change and moves together with models.SchemaVersion.
	itemIDTag = "veilvault:itemid:v1"
	commitTag = "veilvault:commit:v1"

	// SaltSize is the per-item salt width in bytes.
	SaltSize = 32
)

// commitmentBuilder is the private implementation of [CommitmentBuilder].
type commitmentBuilder struct{}

// NewCommitmentBuilder constructs the keccak256 [CommitmentBuilder].
//
// Construction:
//
//	itemIdHash     = keccak256(itemIDTag ‖ salt ‖ keccak256(domain) ‖ keccak256(usernameHint))
//	itemCommitment = keccak256(commitTag ‖ itemIdHash ‖ keccak256(blobLocator) ‖ encryptionKeyHash)
//
// Variable-width inputs (domain, username hint, locator) are normalized to
// 32 bytes by hashing before concatenation so no two input tuples can
// collide by shifting bytes across field boundaries.
func NewCommitmentBuilder() CommitmentBuilder {
	return &commitmentBuilder{}
}

// ItemIDHash implements [CommitmentBuilder].
func (c *commitmentBuilder) ItemIDHash(salt []byte, domain, usernameHint string) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("item salt is %d bytes, want %d: %w", len(salt), SaltSize, ErrInvalidInputLength)
	}
	return Keccak256(
		[]byte(itemIDTag),
		salt,
		Keccak256([]byte(domain)),
		Keccak256([]byte(usernameHint)),
	), nil
}

// ItemCommitment implements [CommitmentBuilder]. The commitment is a one-way
// function of its inputs; recomputing it from a retrieved bundle and
// comparing to the anchored value is the sole tamper-detection mechanism.
func (c *commitmentBuilder) ItemCommitment(itemIDHash []byte, blobLocator string, encryptionKeyHash []byte) ([]byte, error) {
	if len(itemIDHash) != HashSize {
		return nil, fmt.Errorf("item id hash is %d bytes, want %d: %w", len(itemIDHash), HashSize, ErrInvalidInputLength)
	}
	if len(encryptionKeyHash) != HashSize {
		return nil, fmt.Errorf("key hash is %d bytes, want %d: %w", len(encryptionKeyHash), HashSize, ErrInvalidInputLength)
	}
	if blobLocator == "" {
		return nil, fmt.Errorf("empty blob locator: %w", ErrInvalidInputLength)
	}
	return Keccak256(
		[]byte(commitTag),
		itemIDHash,
		Keccak256([]byte(blobLocator)),
		encryptionKeyHash,
	), nil
}

// NewItemSalt implements [CommitmentBuilder].
func (c *commitmentBuilder) NewItemSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate item salt: %w", err)
	}
	return salt, nil
}

// BlobAddress computes the content address of stored bytes: the hex-free
// "cid" form is produced by the caller; this is the raw keccak256 digest.
// The gateway and the client both derive the locator this way, so a store
// that returns a different locator for uploaded bytes is caught immediately.
func BlobAddress(blob []byte) []byte {
	return Keccak256([]byte("veilvault:blob:v1"), blob)
}

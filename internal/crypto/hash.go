// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// HashSize is the keccak256 digest length in bytes.
const HashSize = 32

// Keccak256 hashes the concatenation of parts with keccak-256 (the Ethereum
// legacy variant, not the NIST SHA-3 padding). Every hash in the protocol —
// KDF inputs, key fingerprints, commitments, content addresses — goes
// through this one function so the client and an on-chain verifier can never
// disagree on the hash family.
func Keccak256(parts ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// newKeccak256 adapts the keccak constructor to the func() hash.Hash shape
// the HKDF implementation expects.
func newKeccak256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

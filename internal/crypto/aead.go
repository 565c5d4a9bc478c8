// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/veilvault/veilvault/models"
)

// keyFingerprintTag domain-separates the stored key fingerprint from the
// key itself and from every other keccak use.
const keyFingerprintTag = "veilvault:key:v1"

// KeyFingerprint computes the keccak256 fingerprint of key material that is
// stored in the record as VaultItemCipher.KeyHash and folded into the item
// commitment. The tag prefix makes the fingerprint useless as a key.
func KeyFingerprint(key []byte) []byte {
	return Keccak256([]byte(keyFingerprintTag), key)
}

// encryptionEngine is the private implementation of [EncryptionEngine].
type encryptionEngine struct {
	// aeadCalls counts gcm.Open invocations. Tests use it to prove that the
	// key-fingerprint pre-check fires before any AEAD work.
	aeadCalls atomic.Int64
}

// NewEncryptionEngine constructs the AES-256-GCM [EncryptionEngine].
func NewEncryptionEngine() EncryptionEngine {
	return &encryptionEngine{}
}

// Encrypt implements [EncryptionEngine]. Each call draws a fresh random
// nonce from the OS CSPRNG; nonce reuse under the same key is what GCM can
// never survive, so the nonce is never derived from the payload.
func (e *encryptionEngine) Encrypt(item models.PlaintextItem, key models.KeyMaterial) (models.VaultItemCipher, error) {
	gcm, err := newGCM(key.Key)
	if err != nil {
		return models.VaultItemCipher{}, err
	}

	nonce := make([]byte, models.NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.VaultItemCipher{}, fmt.Errorf("generate nonce: %w", err)
	}

	out := models.VaultItemCipher{
		V:        models.SchemaVersion,
		Site:     item.Site,
		Username: item.Username,
		KeyHash:  hex.EncodeToString(KeyFingerprint(key.Key)),
		Meta:     item.Meta,
	}
	if out.Meta.CreatedAt == "" {
		out.Meta.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	// The cleartext header travels unencrypted but authenticated: swapping
	// the site or username on a stored record breaks the GCM tag.
	ct := gcm.Seal(nil, nonce, item.Secret, aad(out.V, out.Site, out.Username))

	out.Cipher = base64.StdEncoding.EncodeToString(ct)
	out.IV = base64.StdEncoding.EncodeToString(nonce)
	return out, nil
}

// Decrypt implements [EncryptionEngine].
func (e *encryptionEngine) Decrypt(item models.VaultItemCipher, key models.KeyMaterial) ([]byte, error) {
	storedHash, err := hex.DecodeString(item.KeyHash)
	if err != nil {
		return nil, fmt.Errorf("decode key hash: %w", err)
	}

	// Cheap pre-check: a wrong key gets a precise error without paying for
	// an AEAD call that is guaranteed to fail.
	if subtle.ConstantTimeCompare(storedHash, KeyFingerprint(key.Key)) != 1 {
		return nil, fmt.Errorf("decrypt: %w", ErrKeyMismatch)
	}

	ct, err := base64.StdEncoding.DecodeString(item.Cipher)
	if err != nil {
		return nil, fmt.Errorf("decode cipher: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(item.IV)
	if err != nil {
		return nil, fmt.Errorf("decode iv: %w", err)
	}
	if len(nonce) != models.NonceSize {
		return nil, fmt.Errorf("decrypt: iv is %d bytes, want %d: %w", len(nonce), models.NonceSize, ErrInvalidInputLength)
	}

	gcm, err := newGCM(key.Key)
	if err != nil {
		return nil, err
	}

	e.aeadCalls.Add(1)
	plain, err := gcm.Open(nil, nonce, ct, aad(item.V, item.Site, item.Username))
	if err != nil {
		// Tampered ciphertext, tampered header, or a fingerprint collision
		// hiding a wrong key. Hard integrity violation either way.
		return nil, fmt.Errorf("decrypt: %w", ErrAuthenticationFailure)
	}
	return plain, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != models.KeySize {
		return nil, fmt.Errorf("key is %d bytes, want %d: %w", len(key), models.KeySize, ErrInvalidKeyLength)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// aad builds the associated-data bytes binding the cleartext header to the
// ciphertext. Field order is part of the schema; changes bump SchemaVersion.
func aad(v int, site, username string) []byte {
	return Keccak256(
		[]byte{byte(v)},
		[]byte(site),
		[]byte{0x00},
		[]byte(username),
	)
}

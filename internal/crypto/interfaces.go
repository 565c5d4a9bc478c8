package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/veilvault/veilvault/models"

// KeyDerivation turns a wallet signature into a stable symmetric key.
//
// Derivation is pure and deterministic: the same (signature, owner address)
// pair always yields the same key, which is what lets a user re-derive their
// vault key on a new device without ever storing it.
type KeyDerivation interface {
	// Derive computes 32-byte key material from the raw signature bytes and
	// the address that produced them. Returns ErrInvalidSignatureFormat on
	// empty or unparseable signatures. No I/O, no retries.
	Derive(signature []byte, ownerAddress string) (models.KeyMaterial, error)
}

// EncryptionEngine is the authenticated encryption layer of the protocol.
// Only the secret payload is encrypted; display metadata stays cleartext
// inside the record and is bound as associated data.
type EncryptionEngine interface {
	// Encrypt seals item.Secret under key with AES-256-GCM and a fresh
	// random 12-byte nonce, and stamps the record with the schema version,
	// the key fingerprint and a creation timestamp.
	Encrypt(item models.PlaintextItem, key models.KeyMaterial) (models.VaultItemCipher, error)

	// Decrypt recovers the secret payload. Fails with ErrKeyMismatch before
	// any AEAD work when the key fingerprint does not match the record, and
	// with ErrAuthenticationFailure when the GCM tag check fails.
	Decrypt(item models.VaultItemCipher, key models.KeyMaterial) ([]byte, error)
}

// CommitmentBuilder computes the hashes that bind a ciphertext location to
// the key material that produced it. Pure hashing — cheap, synchronous,
// fails only on malformed input widths.
type CommitmentBuilder interface {
	// ItemIDHash computes keccak256 over the per-item salt, the site domain
	// and the username hint. salt must be exactly 32 bytes.
	ItemIDHash(salt []byte, domain, usernameHint string) ([]byte, error)

	// ItemCommitment computes the anchored commitment from the item ID
	// hash, the blob content address and the encryption key fingerprint.
	ItemCommitment(itemIDHash []byte, blobLocator string, encryptionKeyHash []byte) ([]byte, error)

	// NewItemSalt draws a fresh random 32-byte salt. Salts are never reused
	// across items; reuse would link items sharing a domain and hint.
	NewItemSalt() ([]byte, error)
}

package models

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is the current VaultItemCipher schema version. It is bumped
// on any breaking change to field order, separators or hash construction.
const SchemaVersion = 1

// NonceSize is the AES-GCM nonce length in bytes.
const NonceSize = 12

// ItemMetadata is the cleartext metadata block stored alongside the
// ciphertext. None of these fields are secret; they exist so a client can
// list and search items without decrypting anything.
type ItemMetadata struct {
	URL       string `json:"url,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Category  string `json:"category,omitempty"`
	Network   string `json:"network,omitempty"`
	CreatedAt string `json:"created_at"` // ISO 8601 / RFC 3339
}

// VaultItemCipher is the encrypted vault record — the only artifact the
// protocol core ever writes to storage. It contains no plaintext secret:
// only ciphertext, nonce and cleartext display metadata.
//
// Cipher and IV are meaningful only together; every encryption draws a
// fresh random IV, so the record is immutable once written (an update
// produces a whole new record).
type VaultItemCipher struct {
	// V is the schema version, see SchemaVersion.
	V int `json:"v"`

	// Site and Username are plaintext display fields.
	Site     string `json:"site,omitempty"`
	Username string `json:"username,omitempty"`

	// Cipher is the base64 (std encoding) AES-256-GCM ciphertext of the
	// secret payload, authentication tag included.
	Cipher string `json:"cipher"`

	// IV is the base64 12-byte GCM nonce used for Cipher.
	IV string `json:"iv"`

	// KeyHash is the hex keccak256 fingerprint of the key material that
	// produced Cipher. Used for cheap key-mismatch detection before any
	// AEAD work.
	KeyHash string `json:"key_hash"`

	// SecretHash is the hex MiMC digest of the secret payload. It is the
	// public input of the integrity circuit and is bound to the on-chain
	// commitment through the record's content address.
	SecretHash string `json:"secret_hash"`

	// ItemSalt is the hex 32-byte per-item salt used by the commitment
	// builder. Fresh per item; reuse across items would link records that
	// share a domain and username hint.
	ItemSalt string `json:"item_salt"`

	Meta ItemMetadata `json:"meta"`
}

// Marshal serializes the record to its canonical JSON form — the exact
// bytes that get content-addressed and uploaded.
func (v *VaultItemCipher) Marshal() ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal vault item: %w", err)
	}
	return raw, nil
}

// UnmarshalVaultItemCipher parses a stored bundle. A structural parse
// failure here is what the verification loop reports as a malformed bundle.
func UnmarshalVaultItemCipher(raw []byte) (VaultItemCipher, error) {
	var item VaultItemCipher
	if err := json.Unmarshal(raw, &item); err != nil {
		return VaultItemCipher{}, fmt.Errorf("unmarshal vault item: %w", err)
	}
	if item.Cipher == "" || item.IV == "" || item.KeyHash == "" {
		return VaultItemCipher{}, fmt.Errorf("unmarshal vault item: missing cipher, iv or key hash")
	}
	return item, nil
}

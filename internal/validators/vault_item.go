package validators

import (
	"context"
	"encoding/hex"

	"github.com/veilvault/veilvault/internal/crypto"
	"github.com/veilvault/veilvault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldSite targets the plaintext site/domain field of a vault item.
	FieldSite = "site"

	// FieldUsername targets the plaintext username hint of a vault item.
	FieldUsername = "username"

	// FieldSecret targets the secret payload of a plaintext item.
	FieldSecret = "secret"

	// FieldSchema targets the schema version of an encrypted record.
	FieldSchema = "schema"

	// FieldCipher targets the base64 ciphertext of an encrypted record.
	FieldCipher = "cipher"

	// FieldIV targets the base64 GCM nonce of an encrypted record.
	FieldIV = "iv"

	// FieldKeyHash targets the hex key fingerprint of an encrypted record.
	FieldKeyHash = "key_hash"

	// FieldSecretHash targets the hex MiMC digest of an encrypted record.
	FieldSecretHash = "secret_hash"

	// FieldItemSalt targets the hex per-item commitment salt.
	FieldItemSalt = "item_salt"
)

// VaultItemValidator implements the Validator interface for the two vault
// item forms: the plaintext item as the user entered it, and the encrypted
// record as it is stored.
//
// It supports both value and pointer receivers for each model type and
// allows optional field-level scoping via variadic field name arguments.
type VaultItemValidator struct {
}

// NewVaultItemValidator constructs a new VaultItemValidator and returns it
// as the Validator interface.
func NewVaultItemValidator() Validator {
	return &VaultItemValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.PlaintextItem / *models.PlaintextItem
//   - models.VaultItemCipher / *models.VaultItemCipher
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *VaultItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PlaintextItem:
		return v.validatePlaintextItem(ctx, value, fields...)
	case *models.PlaintextItem:
		return v.validatePlaintextItem(ctx, *value, fields...)

	case models.VaultItemCipher:
		return v.validateVaultItemCipher(ctx, value, fields...)
	case *models.VaultItemCipher:
		return v.validateVaultItemCipher(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePlaintextItem validates a user-entered item before encryption.
//
// Default validated fields: Site, Username, Secret. Secret strength is the
// policy circuit's concern, not this validator's; only presence is checked
// here.
func (v *VaultItemValidator) validatePlaintextItem(_ context.Context, item models.PlaintextItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSite, FieldUsername, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldSite:
			if item.Site == "" {
				return ErrEmptySite
			}
		case FieldUsername:
			if item.Username == "" {
				return ErrEmptyUsername
			}
		case FieldSecret:
			if len(item.Secret) == 0 {
				return ErrEmptySecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateVaultItemCipher validates the structural shape of an encrypted
// record: required fields present and hex fields decodable to the expected
// lengths. It never touches the ciphertext contents.
func (v *VaultItemValidator) validateVaultItemCipher(_ context.Context, rec models.VaultItemCipher, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSchema, FieldCipher, FieldIV, FieldKeyHash, FieldSecretHash, FieldItemSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldSchema:
			if rec.V != models.SchemaVersion {
				return ErrInvalidSchema
			}
		case FieldCipher:
			if rec.Cipher == "" {
				return ErrMissingCipher
			}
		case FieldIV:
			if rec.IV == "" {
				return ErrMissingIV
			}
		case FieldKeyHash:
			if !isHexOfLen(rec.KeyHash, crypto.HashSize) {
				return ErrInvalidKeyHash
			}
		case FieldSecretHash:
			if rec.SecretHash == "" {
				return ErrInvalidSecretHash
			}
		case FieldItemSalt:
			if !isHexOfLen(rec.ItemSalt, crypto.SaltSize) {
				return ErrInvalidItemSalt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isHexOfLen reports whether s decodes as hex to exactly n bytes.
func isHexOfLen(s string, n int) bool {
	raw, err := hex.DecodeString(s)
	return err == nil && len(raw) == n
}

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veilvault/veilvault/models"
)

func validPlaintext() models.PlaintextItem {
	return models.PlaintextItem{
		Site:     "github.com",
		Username: "octocat",
		Secret:   []byte("Tr0ub4dor&3!!"),
	}
}

func validCipherRecord() models.VaultItemCipher {
	return models.VaultItemCipher{
		V:          models.SchemaVersion,
		Site:       "github.com",
		Username:   "octocat",
		Cipher:     "Y2lwaGVydGV4dA==",
		IV:         "bm9uY2Vub25jZQ==",
		KeyHash:    strings.Repeat("ab", 32),
		SecretHash: strings.Repeat("cd", 32),
		ItemSalt:   strings.Repeat("ef", 32),
	}
}

func TestValidate_PlaintextItem_TableTest(t *testing.T) {
	v := NewVaultItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.PlaintextItem)
		fields  []string
		wantErr error
	}{
		{name: "valid item", mutate: func(*models.PlaintextItem) {}},
		{
			name:    "empty site",
			mutate:  func(i *models.PlaintextItem) { i.Site = "" },
			wantErr: ErrEmptySite,
		},
		{
			name:    "empty username",
			mutate:  func(i *models.PlaintextItem) { i.Username = "" },
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "empty secret",
			mutate:  func(i *models.PlaintextItem) { i.Secret = nil },
			wantErr: ErrEmptySecret,
		},
		{
			name:   "scoped validation skips unset fields",
			mutate: func(i *models.PlaintextItem) { i.Site = "" },
			fields: []string{FieldSecret},
		},
		{
			name:    "unknown field",
			mutate:  func(*models.PlaintextItem) {},
			fields:  []string{"no_such_field"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validPlaintext()
			tt.mutate(&item)

			err := v.Validate(ctx, item, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_VaultItemCipher_TableTest(t *testing.T) {
	v := NewVaultItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.VaultItemCipher)
		wantErr error
	}{
		{name: "valid record", mutate: func(*models.VaultItemCipher) {}},
		{
			name:    "wrong schema version",
			mutate:  func(r *models.VaultItemCipher) { r.V = 99 },
			wantErr: ErrInvalidSchema,
		},
		{
			name:    "missing cipher",
			mutate:  func(r *models.VaultItemCipher) { r.Cipher = "" },
			wantErr: ErrMissingCipher,
		},
		{
			name:    "missing iv",
			mutate:  func(r *models.VaultItemCipher) { r.IV = "" },
			wantErr: ErrMissingIV,
		},
		{
			name:    "key hash not hex",
			mutate:  func(r *models.VaultItemCipher) { r.KeyHash = "zz" },
			wantErr: ErrInvalidKeyHash,
		},
		{
			name:    "key hash wrong length",
			mutate:  func(r *models.VaultItemCipher) { r.KeyHash = "abcd" },
			wantErr: ErrInvalidKeyHash,
		},
		{
			name:    "empty secret hash",
			mutate:  func(r *models.VaultItemCipher) { r.SecretHash = "" },
			wantErr: ErrInvalidSecretHash,
		},
		{
			name:    "salt wrong length",
			mutate:  func(r *models.VaultItemCipher) { r.ItemSalt = "abcd" },
			wantErr: ErrInvalidItemSalt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validCipherRecord()
			tt.mutate(&rec)

			err := v.Validate(ctx, &rec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewVaultItemValidator()

	err := v.Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

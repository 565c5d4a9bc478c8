package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySite         = errors.New("site is required")
	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptySecret       = errors.New("secret is required")
	ErrMissingCipher     = errors.New("ciphertext is required")
	ErrMissingIV         = errors.New("nonce is required")
	ErrInvalidKeyHash    = errors.New("invalid key hash")
	ErrInvalidSecretHash = errors.New("invalid secret hash")
	ErrInvalidItemSalt   = errors.New("invalid item salt")
	ErrInvalidSchema     = errors.New("unsupported schema version")
)

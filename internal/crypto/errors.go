package crypto

import "errors"

var (
	// ErrInvalidSignatureFormat means the wallet signature could not be
	// parsed to raw bytes. Input error, never retried.
	ErrInvalidSignatureFormat = errors.New("invalid signature format")

	// ErrInvalidKeyLength means the supplied key material is not 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrKeyMismatch means the fingerprint of the supplied key does not
	// equal the key hash stored in the record. Raised before any AEAD work.
	ErrKeyMismatch = errors.New("key mismatch")

	// ErrAuthenticationFailure means the AEAD tag check failed: the
	// ciphertext was tampered with, or a wrong key slipped past the
	// fingerprint pre-check. Hard integrity violation, never ignored.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrInvalidInputLength means a commitment input is not the expected
	// fixed width after normalization.
	ErrInvalidInputLength = errors.New("invalid input length")
)

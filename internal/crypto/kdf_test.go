package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDerive_DeterministicForSameInputs(t *testing.T) {
	kdf := NewKeyDerivation()

	sig := bytes.Repeat([]byte{0x5A}, 65)
	owner := "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"

	k1, err := kdf.Derive(sig, owner)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k2, err := kdf.Derive(sig, owner)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if len(k1.Key) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1.Key))
	}
	if !bytes.Equal(k1.Key, k2.Key) {
		t.Fatalf("expected identical keys for identical (signature, owner)")
	}
	if !bytes.Equal(k1.Salt, k2.Salt) {
		t.Fatalf("expected identical salts for identical owner")
	}
}

func TestDerive_DifferentSignatureProducesDifferentKey(t *testing.T) {
	kdf := NewKeyDerivation()
	owner := "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"

	k1, err := kdf.Derive(bytes.Repeat([]byte{0x01}, 65), owner)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k2, err := kdf.Derive(bytes.Repeat([]byte{0x02}, 65), owner)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if bytes.Equal(k1.Key, k2.Key) {
		t.Fatalf("expected different keys for different signatures")
	}
}

func TestDerive_DifferentOwnerProducesDifferentKey(t *testing.T) {
	kdf := NewKeyDerivation()
	sig := bytes.Repeat([]byte{0x5A}, 65)

	k1, err := kdf.Derive(sig, "0x1111111111111111111111111111111111111111")
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k2, err := kdf.Derive(sig, "0x2222222222222222222222222222222222222222")
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if bytes.Equal(k1.Key, k2.Key) {
		t.Fatalf("expected different keys for different owners")
	}
}

func TestDerive_EmptySignatureRejected(t *testing.T) {
	kdf := NewKeyDerivation()

	_, err := kdf.Derive(nil, "0x1111111111111111111111111111111111111111")
	if !errors.Is(err, ErrInvalidSignatureFormat) {
		t.Fatalf("err = %v, want ErrInvalidSignatureFormat", err)
	}
}

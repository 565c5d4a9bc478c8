package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/veilvault/veilvault/models"
)

func TestItemIDHash_DeterministicAndSaltSensitive(t *testing.T) {
	cb := NewCommitmentBuilder()
	salt := bytes.Repeat([]byte{0x11}, SaltSize)

	h1, err := cb.ItemIDHash(salt, "example.com", "alice")
	if err != nil {
		t.Fatalf("ItemIDHash error: %v", err)
	}
	h2, err := cb.ItemIDHash(salt, "example.com", "alice")
	if err != nil {
		t.Fatalf("ItemIDHash error: %v", err)
	}
	if !bytes.Equal(h1, h2) {
		t.Fatalf("expected deterministic item id hash")
	}

	other, err := cb.ItemIDHash(bytes.Repeat([]byte{0x22}, SaltSize), "example.com", "alice")
	if err != nil {
		t.Fatalf("ItemIDHash error: %v", err)
	}
	if bytes.Equal(h1, other) {
		t.Fatalf("expected different salts to unlink identical domain/hint pairs")
	}
}

func TestItemIDHash_WrongSaltWidthRejected(t *testing.T) {
	cb := NewCommitmentBuilder()

	for _, n := range []int{0, 16, 31, 33} {
		_, err := cb.ItemIDHash(bytes.Repeat([]byte{0x01}, n), "example.com", "alice")
		if !errors.Is(err, ErrInvalidInputLength) {
			t.Fatalf("salt width %d: err = %v, want ErrInvalidInputLength", n, err)
		}
	}
}

func TestItemCommitment_InputWidthChecks(t *testing.T) {
	cb := NewCommitmentBuilder()
	ok := bytes.Repeat([]byte{0x01}, HashSize)

	if _, err := cb.ItemCommitment(ok[:31], "cid", ok); !errors.Is(err, ErrInvalidInputLength) {
		t.Fatalf("short item id hash: err = %v, want ErrInvalidInputLength", err)
	}
	if _, err := cb.ItemCommitment(ok, "cid", ok[:16]); !errors.Is(err, ErrInvalidInputLength) {
		t.Fatalf("short key hash: err = %v, want ErrInvalidInputLength", err)
	}
	if _, err := cb.ItemCommitment(ok, "", ok); !errors.Is(err, ErrInvalidInputLength) {
		t.Fatalf("empty locator: err = %v, want ErrInvalidInputLength", err)
	}
	if _, err := cb.ItemCommitment(ok, "cid", ok); err != nil {
		t.Fatalf("valid inputs: %v", err)
	}
}

// Two encryptions of the same plaintext must anchor to different commitments
// because the fresh IV changes the bundle bytes, hence the content address.
func TestItemCommitment_UniquePerEncryption(t *testing.T) {
	engine := NewEncryptionEngine()
	cb := NewCommitmentBuilder()
	key := testKey(0x42)

	salt := bytes.Repeat([]byte{0x33}, SaltSize)
	idHash, err := cb.ItemIDHash(salt, "example.com", "alice")
	if err != nil {
		t.Fatalf("ItemIDHash error: %v", err)
	}
	keyHash := KeyFingerprint(key.Key)

	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		rec, err := engine.Encrypt(testItem([]byte("identical plaintext")), key)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		raw, err := rec.Marshal()
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
		locator := hex.EncodeToString(BlobAddress(raw))

		commitment, err := cb.ItemCommitment(idHash, locator, keyHash)
		if err != nil {
			t.Fatalf("ItemCommitment error: %v", err)
		}

		c := hex.EncodeToString(commitment)
		if _, dup := seen[c]; dup {
			t.Fatalf("commitment collision on trial %d", i)
		}
		seen[c] = struct{}{}
	}
}

func TestBlobAddress_DeterministicPerContent(t *testing.T) {
	a := BlobAddress([]byte("same bytes"))
	b := BlobAddress([]byte("same bytes"))
	c := BlobAddress([]byte("other bytes"))

	if !bytes.Equal(a, b) {
		t.Fatalf("expected identical content to collapse to one address")
	}
	if bytes.Equal(a, c) {
		t.Fatalf("expected different content to produce different addresses")
	}
	if len(a) != models.KeySize {
		t.Fatalf("address length = %d, want 32", len(a))
	}
}

func TestNewItemSalt_FreshAndFullWidth(t *testing.T) {
	cb := NewCommitmentBuilder()

	s1, err := cb.NewItemSalt()
	if err != nil {
		t.Fatalf("NewItemSalt error: %v", err)
	}
	s2, err := cb.NewItemSalt()
	if err != nil {
		t.Fatalf("NewItemSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected fresh random salts to differ")
	}
}

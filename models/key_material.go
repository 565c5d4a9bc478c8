package models

// KeySize is the length in bytes of every symmetric key used by the vault
// protocol (256 bits, AES-256-GCM).
const KeySize = 32

// KeyMaterial is a derived symmetric key together with its provenance.
// For a fixed (signature, owner address, domain tag) triple derivation is
// deterministic, so the same user re-derives the same key on a new device.
//
// KeyMaterial lives only in memory for the duration of an encrypt/decrypt
// operation. It must never be persisted or logged; call Zero when done.
type KeyMaterial struct {
	// Key is the 32-byte symmetric key.
	Key []byte

	// OwnerAddress is the address whose wallet signature produced the key.
	OwnerAddress string

	// Salt is the derivation salt (hash of owner address and domain tag).
	Salt []byte

	// DomainTag is the version-tagged info string fed to the KDF,
	// e.g. "veilvault:kdf:v1".
	DomainTag string
}

// Zero overwrites the key bytes and the salt in place. The struct is not
// usable afterwards.
func (k *KeyMaterial) Zero() {
	for i := range k.Key {
		k.Key[i] = 0
	}
	for i := range k.Salt {
		k.Salt[i] = 0
	}
	k.Key = nil
	k.Salt = nil
}

package models

// CircuitID identifies a compiled circuit: the hex SHA-256 of its serialized
// verifying key. A proof is only accepted when its CircuitID matches the
// circuit the verifier expects — a valid proof from "some circuit" proves
// nothing about the policy or integrity predicate.
type CircuitID string

// PolicyProof is a zero-knowledge proof that the secret behind SecretHash
// satisfies the password strength policy (length and character classes),
// produced without revealing the secret.
type PolicyProof struct {
	// CircuitID names the policy circuit that produced the proof.
	CircuitID CircuitID `json:"circuit_id"`

	// Proof is the serialized Groth16 proof.
	Proof []byte `json:"proof"`

	// SecretHash is the public input: hex MiMC digest of the secret.
	SecretHash string `json:"secret_hash"`
}

// IntegrityProof is a zero-knowledge proof that a decrypted plaintext hashes
// to StoredHash — the mechanism by which an auditor who never sees the
// plaintext can check that a claimed decryption matches the anchored
// commitment.
type IntegrityProof struct {
	// CircuitID names the integrity circuit that produced the proof.
	CircuitID CircuitID `json:"circuit_id"`

	// Proof is the serialized Groth16 proof.
	Proof []byte `json:"proof"`

	// StoredHash is the public input: hex MiMC digest the plaintext must
	// match, taken from the anchored bundle.
	StoredHash string `json:"stored_hash"`
}

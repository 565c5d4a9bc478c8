// Package zk implements the proving backend of the vault protocol with
// gnark (Groth16 over BN254) and the MiMC hash.
//
// Two circuits are compiled:
//
//   - PolicyCircuit proves that the secret behind a public MiMC digest
//     satisfies the password strength policy (length and character classes)
//     without revealing the secret.
//   - IntegrityCircuit proves that a plaintext hashes to a previously
//     committed MiMC digest, so an auditor who never sees the plaintext can
//     check a claimed decryption against the anchored commitment.
//
// Compiled constraint systems and Groth16 key pairs are cached on disk and
// reloaded across runs. Every proof carries the CircuitID of the verifying
// key that produced it; verification refuses proofs from any other circuit.
package zk

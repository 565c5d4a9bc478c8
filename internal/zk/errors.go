package zk

import "errors"

var (
	// ErrProverFault means the proving backend itself failed: malformed
	// circuit artifact, witness construction error, resource exhaustion.
	// Distinct from "predicate false", which never reaches the prover.
	ErrProverFault = errors.New("prover fault")

	// ErrVerifierFault means the proof bytes could not be parsed at all.
	// Distinct from a well-formed proof that fails verification (false).
	ErrVerifierFault = errors.New("verifier fault")

	// ErrSecretTooLong means the secret exceeds the fixed circuit width.
	ErrSecretTooLong = errors.New("secret exceeds circuit capacity")

	// ErrEmptySecret means there is nothing to prove over.
	ErrEmptySecret = errors.New("empty secret")
)

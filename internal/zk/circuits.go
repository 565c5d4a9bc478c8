// SPDX-License-Identifier: Apache-2.0

package zk

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

const (
	// MaxSecretLen is the fixed slot count of both circuits. Secrets are
	// zero-padded to this width before hashing, in and out of circuit.
	MaxSecretLen = 64

	// MinSecretLen is the policy's minimum secret length.
	MinSecretLen = 12

	// MinCharClasses is the policy's minimum number of distinct character
	// classes (lowercase, uppercase, digit, symbol).
	MinCharClasses = 3
)

// PolicyCircuit proves that the secret behind SecretHash is at least
// MinSecretLen bytes long and draws on at least MinCharClasses of the four
// character classes. The predicate is evaluated inside the circuit, so a
// prover cannot fabricate a passing proof for a non-compliant secret.
type PolicyCircuit struct {
	// Secret holds the secret bytes, one byte value per slot, zero-padded.
	Secret [MaxSecretLen]frontend.Variable `gnark:",secret"`

	// Length is the number of meaningful bytes in Secret.
	Length frontend.Variable `gnark:",secret"`

	// SecretHash is the public MiMC digest binding the witness to the
	// secret committed elsewhere: MiMC(Secret[0..63], Length).
	SecretHash frontend.Variable `gnark:",public"`
}

// Define implements [frontend.Circuit].
func (c *PolicyCircuit) Define(api frontend.API) error {
	api.AssertIsLessOrEqual(c.Length, MaxSecretLen)
	api.AssertIsLessOrEqual(MinSecretLen, c.Length)

	var lower, upper, digit, symbol frontend.Variable = 0, 0, 0, 0

	for i := 0; i < MaxSecretLen; i++ {
		b := c.Secret[i]
		assertByte(api, b)

		// Slot participates only while i < Length.
		active := byteLess(api, i, c.Length)

		isLower := inRange(api, b, 'a', 'z')
		isUpper := inRange(api, b, 'A', 'Z')
		isDigit := inRange(api, b, '0', '9')
		// Printable, non-alphanumeric.
		isSymbol := api.Mul(
			inRange(api, b, '!', '~'),
			api.Sub(1, isLower),
			api.Sub(1, isUpper),
			api.Sub(1, isDigit),
		)

		lower = api.Add(lower, api.Mul(active, isLower))
		upper = api.Add(upper, api.Mul(active, isUpper))
		digit = api.Add(digit, api.Mul(active, isDigit))
		symbol = api.Add(symbol, api.Mul(active, isSymbol))
	}

	classes := api.Add(
		present(api, lower),
		present(api, upper),
		present(api, digit),
		present(api, symbol),
	)
	api.AssertIsLessOrEqual(MinCharClasses, classes)

	return bindSecretHash(api, c.Secret[:], c.Length, c.SecretHash)
}

// IntegrityCircuit proves MiMC(Plaintext, Length) == StoredHash and nothing
// else: knowledge of a preimage for the committed digest.
type IntegrityCircuit struct {
	// Plaintext holds the decrypted bytes, one byte value per slot,
	// zero-padded to MaxSecretLen.
	Plaintext [MaxSecretLen]frontend.Variable `gnark:",secret"`

	// Length is the number of meaningful bytes in Plaintext.
	Length frontend.Variable `gnark:",secret"`

	// StoredHash is the public digest the plaintext must match, taken from
	// the anchored bundle.
	StoredHash frontend.Variable `gnark:",public"`
}

// Define implements [frontend.Circuit].
func (c *IntegrityCircuit) Define(api frontend.API) error {
	api.AssertIsLessOrEqual(c.Length, MaxSecretLen)
	for i := 0; i < MaxSecretLen; i++ {
		assertByte(api, c.Plaintext[i])
	}
	return bindSecretHash(api, c.Plaintext[:], c.Length, c.StoredHash)
}

// bindSecretHash constrains MiMC(slots..., length) == want. The hash walks
// every slot including the zero padding, so the digest fixes padding too.
func bindSecretHash(api frontend.API, slots []frontend.Variable, length, want frontend.Variable) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(slots...)
	h.Write(length)
	api.AssertIsEqual(h.Sum(), want)
	return nil
}

// assertByte constrains v to a single byte via an 8-bit decomposition.
func assertByte(api frontend.API, v frontend.Variable) {
	api.ToBinary(v, 8)
}

// byteLess returns 1 when a < b, 0 otherwise. Both operands must already be
// constrained below 2^8: a-b+256 then fits 9 bits, and its top bit is unset
// exactly when a < b. One small decomposition instead of a full-field Cmp.
func byteLess(api frontend.API, a, b frontend.Variable) frontend.Variable {
	bits := api.ToBinary(api.Add(api.Sub(a, b), 256), 9)
	return api.Sub(1, bits[8])
}

// inRange returns 1 when lo <= v <= hi, 0 otherwise.
func inRange(api frontend.API, v frontend.Variable, lo, hi byte) frontend.Variable {
	notBelow := api.Sub(1, byteLess(api, v, int(lo)))
	notAbove := api.Sub(1, byteLess(api, int(hi), v))
	return api.Mul(notBelow, notAbove)
}

// present collapses a count to a 0/1 presence flag.
func present(api frontend.API, count frontend.Variable) frontend.Variable {
	return api.Sub(1, api.IsZero(count))
}

package service

import (
	"fmt"
	"unicode"

	"github.com/veilvault/veilvault/internal/zk"
)

// CheckPolicy evaluates the strength predicate locally: length at least
// zk.MinSecretLen and at least zk.MinCharClasses of {lowercase, uppercase,
// digit, symbol} present. The same predicate runs inside the policy
// circuit; this copy exists purely to fail fast before paying proving cost.
func CheckPolicy(secret []byte) error {
	if len(secret) < zk.MinSecretLen {
		return fmt.Errorf("secret is %d bytes, need at least %d: %w", len(secret), zk.MinSecretLen, ErrPolicyNotMet)
	}
	if len(secret) > zk.MaxSecretLen {
		return fmt.Errorf("secret is %d bytes, circuit fits %d: %w", len(secret), zk.MaxSecretLen, ErrPolicyNotMet)
	}

	var lower, upper, digit, symbol bool
	for _, b := range secret {
		r := rune(b)
		switch {
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			lower = true
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= '!' && r <= '~':
			// printable non-alphanumeric
			symbol = true
		}
	}

	classes := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			classes++
		}
	}
	if classes < zk.MinCharClasses {
		return fmt.Errorf("secret draws on %d character classes, need %d: %w", classes, zk.MinCharClasses, ErrPolicyNotMet)
	}
	return nil
}

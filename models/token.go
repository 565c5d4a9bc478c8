package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for the
// gateway's authentication flow.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// OwnerAddress caches the "sub" claim so handlers do not re-parse it.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the gateway process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// OwnerAddress is the owner identifier extracted from the "sub" claim.
	OwnerAddress string `json:"-"`
}

// GetOwnerAddress extracts the owner address from the token's "sub" claim.
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetOwnerAddress() (string, error) {
	owner, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting owner address from token: %w", err)
	}
	if owner == "" {
		return "", fmt.Errorf("token subject is empty")
	}
	return owner, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

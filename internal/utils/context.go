// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP response
// writing, JWT token generation and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerCtxKey is the key used to store the authenticated owner address in
// the context. Used together with GetOwnerFromContext for type-safe
// retrieval.
var OwnerCtxKey = contextKey("ownerAddress")

// GetOwnerFromContext retrieves the authenticated owner address from the
// context.
//
// Returns the owner address and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetOwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerCtxKey).(string)
	return owner, ok
}

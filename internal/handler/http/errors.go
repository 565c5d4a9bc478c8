// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Errors the auth middleware reports back to the client when the bearer
// token cannot even be extracted from the request.
var (
	ErrEmptyAuthorizationHeader   = errors.New("missing Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("malformed Authorization header")
)

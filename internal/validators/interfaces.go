// SPDX-License-Identifier: Apache-2.0

// Package validators checks vault item input before it reaches the
// protocol core, so malformed forms are rejected without touching key
// material or the network.
package validators

import "context"

// Validator validates an arbitrary value. Passing field names restricts the
// check to those fields; passing none validates everything the implementation
// knows about the value's type.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

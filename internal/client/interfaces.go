// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/veilvault/veilvault/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one command and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// Verifier is the verification collaborator of the client runtime; satisfied
// by *service.VerificationService.
type Verifier interface {
	Verify(ctx context.Context, session *service.VaultSession) (service.VerificationReport, error)
}

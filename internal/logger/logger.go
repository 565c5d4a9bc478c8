// SPDX-License-Identifier: Apache-2.0

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout veilvault. The wrapper exists so the application can add
// helper constructors (role-tagged loggers, request-scoped loggers)
// without touching the upstream type.
//
// Nothing in this package may ever receive key material or plaintext
// secrets; callers log fingerprints, locators and commitments only.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the
// full zerolog API while allowing veilvault-specific helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production *Logger for the given role label
// (e.g. "gateway", "vault-cli", "prover").
//
// Configuration:
//   - global level Debug;
//   - a "role" field for filtering entries from different components;
//   - a timestamp on every entry;
//   - a "func" caller field carrying the fully qualified function name.
//
// Output is JSON on os.Stdout.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; the child can be enriched without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the request-scoped logger attached to the request
// context by the trace-ID middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx. Falls back to zerolog's
// global logger when none is attached, so it never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// SPDX-License-Identifier: Apache-2.0

// Package client implements the vault command-line application runtime.
//
// It wires the wallet signer, the gateway adapter, the proof services and
// the local state store into a single process lifecycle and dispatches the
// add/get/verify/history commands against an open vault session.
package client

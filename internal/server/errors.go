// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

var errNoTransportConfigured = errors.New("no transport configured: set the HTTP listen address")

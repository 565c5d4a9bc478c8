package config

import "errors"

var (
	ErrNoTokenSignKey  = errors.New("token sign key is required")
	ErrNoOwnerAddress  = errors.New("owner address is required")
	ErrNoGatewayURL    = errors.New("gateway url is required")
	ErrNegativeRetries = errors.New("fetch retries must not be negative")
	ErrNegativeTimeout = errors.New("timeouts must not be negative")
)

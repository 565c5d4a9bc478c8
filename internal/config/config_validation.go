package config

import "time"

// Defaults applied after merging all sources. Only zero fields are touched.
const (
	defaultGatewayURL     = "http://localhost:8080"
	defaultRequestTimeout = 15 * time.Second
	defaultProofTimeout   = 2 * time.Minute
	defaultTokenDuration  = time.Hour
	defaultFetchRetries   = 4
)

func (c *StructuredConfig) applyDefaults() {
	if c.Client.GatewayURL == "" {
		c.Client.GatewayURL = defaultGatewayURL
	}
	if c.Client.RequestTimeout == 0 {
		c.Client.RequestTimeout = defaultRequestTimeout
	}
	if c.Client.ProofTimeout == 0 {
		c.Client.ProofTimeout = defaultProofTimeout
	}
	if c.Client.FetchRetries == 0 {
		c.Client.FetchRetries = defaultFetchRetries
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
}

// validate rejects configurations no binary could run with. Per-binary
// requirements (a DSN for the gateway, an owner for the CLI) are checked by
// the respective main, since the two binaries share this package.
func (c *StructuredConfig) validate() error {
	if c.Client.FetchRetries < 0 {
		return ErrNegativeRetries
	}
	if c.Client.RequestTimeout < 0 || c.Client.ProofTimeout < 0 || c.Server.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using caarlos0/env.
// Struct fields are mapped via the `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

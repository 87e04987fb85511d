// Package config loads storefront process settings and reports fatal
// startup errors.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every storefront environment variable.
const EnvPrefix = "STOREFRONT_"

// ParseEnvWithPrefix loads configuration from environment variables whose
// names start with prefix. Struct tags carry the unprefixed names.
func ParseEnvWithPrefix(target any, prefix string) error {
	opts := env.Options{Prefix: strings.TrimSpace(prefix)}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

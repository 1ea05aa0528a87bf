// Package resources holds assets compiled into the binary.
package resources

import _ "embed"

// DefaultConfig is the built-in application configuration in YAML form.
//
//go:embed default_config.yaml
var DefaultConfig []byte

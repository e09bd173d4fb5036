// Package config provides CLI configuration for kappa.
//
//   - spec.go: CLIConfig struct (~/.kappa/cli.yaml), defaults and validation
//   - loader.go: loading, saving and redaction
//
// Configuration includes:
//
//   - One endpoint URL per drop operation
//   - The credential header name and value
//   - Output format and colour preferences
//   - Request timeout and log settings
package config

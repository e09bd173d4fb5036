// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// CLIConfig is the configuration for kappa-cli.
type CLIConfig struct {
	// Drop service endpoints
	Endpoints EndpointsConfig `koanf:"endpoints" yaml:"endpoints"`

	// Static credential header attached to every request
	Credential CredentialConfig `koanf:"credential" yaml:"credential"`

	Output  string        `koanf:"output" yaml:"output"` // text, table, json, yaml
	Color   bool          `koanf:"color" yaml:"color"`
	Timeout time.Duration `koanf:"timeout" yaml:"timeout"` // 0 waits indefinitely
	Watch   bool          `koanf:"watch" yaml:"watch"`     // reload on file change

	Log LogConfig `koanf:"log" yaml:"log"`
}

// EndpointsConfig holds one URL per drop operation.
type EndpointsConfig struct {
	List   string `koanf:"list" yaml:"list"`
	Create string `koanf:"create" yaml:"create"`
	Edit   string `koanf:"edit" yaml:"edit"`
	Delete string `koanf:"delete" yaml:"delete"`
}

// CredentialConfig is the header name/value pair sent with each request.
type CredentialConfig struct {
	Header string `koanf:"header" yaml:"header"`
	Value  string `koanf:"value" yaml:"value"`
}

// LogConfig configures diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// DefaultEndpoint is where every operation points until configured.
const DefaultEndpoint = "http://localhost:3000/"

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Endpoints: EndpointsConfig{
			List:   DefaultEndpoint,
			Create: DefaultEndpoint,
			Edit:   DefaultEndpoint,
			Delete: DefaultEndpoint,
		},
		Credential: CredentialConfig{
			Header: "header",
			Value:  "value",
		},
		Output: "text",
		Color:  true,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

var validOutputs = map[string]bool{"text": true, "table": true, "json": true, "yaml": true}

// Validate checks the configuration for values the client cannot use.
func (c *CLIConfig) Validate() error {
	endpoints := []struct {
		key   string
		value string
	}{
		{"endpoints.list", c.Endpoints.List},
		{"endpoints.create", c.Endpoints.Create},
		{"endpoints.edit", c.Endpoints.Edit},
		{"endpoints.delete", c.Endpoints.Delete},
	}
	for _, ep := range endpoints {
		u, err := url.Parse(ep.value)
		if err != nil {
			return fmt.Errorf("%s: %w", ep.key, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s: %q is not an http(s) URL", ep.key, ep.value)
		}
		if u.Host == "" {
			return fmt.Errorf("%s: %q has no host", ep.key, ep.value)
		}
	}

	if c.Credential.Header == "" {
		return fmt.Errorf("credential.header must not be empty")
	}
	if !validOutputs[c.Output] {
		return fmt.Errorf("output: unknown format %q (text, table, json, yaml)", c.Output)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// SetServer points every endpoint at the same base URL.
func (c *CLIConfig) SetServer(server string) {
	c.Endpoints = EndpointsConfig{
		List:   server,
		Create: server,
		Edit:   server,
		Delete: server,
	}
}

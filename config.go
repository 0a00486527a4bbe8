package sure

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/sure/policy"
)

// Config is a serialisable representation of a Resolver. The zero value is
// useful: everything is confirmed automatically and nothing is traced.
type Config struct {
	Policy  *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
	Tracing TracingConfig  `json:"tracing" yaml:"tracing"`
}

// TracingConfig enables the stdout OpenTelemetry exporter.
type TracingConfig struct {
	Enabled        bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a Config with auto mode and tracing disabled.
func DefaultConfig() *Config {
	return &Config{
		Policy: &policy.Config{Mode: policy.ModeAuto},
		Tracing: TracingConfig{
			ServiceName: "sure",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName must be set when tracing is enabled")
	}
	return nil
}

// LoadConfig reads a YAML config from URL using fs (afs.New() when nil).
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return cfg, cfg.Validate()
}

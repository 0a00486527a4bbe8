package policy

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is the serialisable part of a Policy (everything but Ask).
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// Validate checks the mode value.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch strings.ToLower(c.Mode) {
	case "", ModeAsk, ModeAuto, ModeDeny:
		return nil
	}
	return fmt.Errorf("invalid policy mode: %q", c.Mode)
}

// ToConfig captures the persistable part of p; Ask is dropped.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{Mode: p.Mode, AllowList: slices.Clone(p.AllowList), BlockList: slices.Clone(p.BlockList)}
}

// FromConfig builds a Policy without Ask. The mode is lower-cased and
// defaults to ModeAuto.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	mode := strings.ToLower(c.Mode)
	if mode == "" {
		mode = ModeAuto
	}
	return &Policy{Mode: mode, AllowList: slices.Clone(c.AllowList), BlockList: slices.Clone(c.BlockList)}
}

// ParseConfig decodes a YAML (or JSON) encoded config.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode policy config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes config from URL (file://, mem://, s3:// ...).
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy config %v: %w", URL, err)
	}
	return ParseConfig(data)
}

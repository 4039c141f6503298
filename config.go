package sumuuid

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/sumuuid/entropy"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the service configuration. The
// zero-value is useful – the secure entropy source is used and tracing is off.
type Config struct {
	Entropy EntropyConfig `json:"entropy" yaml:"entropy"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

type EntropyConfig struct {
	// Source is one of secure, fastrand or seeded.
	Source string `json:"source" yaml:"source"`
	Seed   string `json:"seed,omitempty" yaml:"seed,omitempty"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	// OutputFile receives stdout exporter spans, empty means os.Stdout.
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with default values. Callers may
// modify the returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Entropy: EntropyConfig{Source: entropy.SecureName},
		Tracing: TracingConfig{ServiceName: "sumuuid", ServiceVersion: "0.1.0"},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if _, err := c.source(); err != nil {
		return fmt.Errorf("invalid entropy config: %w", err)
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName must not be empty when tracing is enabled")
	}
	return nil
}

func (c *Config) source() (entropy.Source, error) {
	return entropy.Lookup(c.Entropy.Source, []byte(c.Entropy.Seed))
}

// LoadConfig reads a YAML (or JSON) config from URL, unset fields keep their defaults.
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

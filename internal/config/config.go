// Package config holds the capparse command configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/andaru/cap/alert"
	"github.com/andaru/cap/geometry"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by NewViper
const EnvPrefix = "CAPPARSE"

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the capparse configuration
type Config struct {
	Format           string `mapstructure:"format"`
	Indent           int    `mapstructure:"indent"`
	NamespaceScan    bool   `mapstructure:"namespace_scan"`
	StrictReferences bool   `mapstructure:"strict_references"`
	// Point is an optional "lat,lon" position tested against each
	// alert's areas.
	Point string `mapstructure:"point"`

	point *geometry.Point
}

// NewViper returns a viper instance with the configuration defaults,
// reading CAPPARSE_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault("format", FormatJSON)
	v.SetDefault("indent", 2)
	v.SetDefault("namespace_scan", false)
	v.SetDefault("strict_references", false)
	v.SetDefault("point", "")
	return v
}

// Load decodes and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies defaults and validates the configuration
func (c *Config) Validate() error {
	var errors []string

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case "":
		c.Format = FormatJSON
	case FormatJSON, FormatYAML:
	default:
		errors = append(errors, fmt.Sprintf("format must be one of: %s, %s", FormatJSON, FormatYAML))
	}

	if c.Indent < 0 || c.Indent > 8 {
		errors = append(errors, "indent must be between 0 and 8")
	}

	c.point = nil
	if c.Point != "" {
		points, err := geometry.ParsePoints(c.Point)
		switch {
		case err != nil:
			errors = append(errors, fmt.Sprintf("point: %v", err))
		case len(points) != 1:
			errors = append(errors, "point must be a single lat,lon pair")
		default:
			c.point = &points[0]
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// ParseOptions returns the alert parse options selected by c
func (c *Config) ParseOptions() []alert.Option {
	var opts []alert.Option
	if c.NamespaceScan {
		opts = append(opts, alert.WithNamespaceScan())
	}
	if c.StrictReferences {
		opts = append(opts, alert.WithStrictReferences())
	}
	return opts
}

// Position returns the validated Point, or nil when none was given
func (c *Config) Position() *geometry.Point { return c.point }

// Package config loads the generator configuration file (jasonify.yaml).
//
// Values are layered: Default provides the base, the file replaces whatever
// it sets, and command-line flags override both. Unknown keys in the file are
// rejected so typos do not silently fall back to defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config is the generator configuration.
type Config struct {
	// Package is the directory of the Go package to scan.
	// Default: .
	Package string `yaml:"package"`

	// Output is the generated file name, written inside Package.
	// Default: zz_jasonify.go
	Output string `yaml:"output"`

	// Types restricts generation to the named struct types. Empty selects
	// every struct annotated with //jasonify:json.
	Types []string `yaml:"types"`

	// Accessors lets unexported fields take part when the type declares a
	// Name() or GetName() accessor for them.
	// Default: true
	Accessors bool `yaml:"accessors"`

	// Methods also emits MarshalJSON and UnmarshalJSON methods bound to the
	// default registry.
	// Default: true
	Methods bool `yaml:"methods"`

	// External maps Go type names registered by other packages to their
	// registry identity, e.g. "geo.Point": "geo.Point".
	External map[string]string `yaml:"external"`

	// Imports maps package qualifiers of external types to import paths,
	// e.g. "geo": "example.com/maps/geo". Entries override the imports
	// found in the scanned package's files.
	Imports map[string]string `yaml:"imports"`

	// Log configures CLI logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	// Default: info
	Level string `yaml:"level"`

	// Format is console or json.
	// Default: console
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Package:   ".",
		Output:    "zz_jasonify.go",
		Accessors: true,
		Methods:   true,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs error
	if c.Package == "" {
		errs = multierr.Append(errs, errors.New("package is required"))
	}
	if c.Output == "" {
		errs = multierr.Append(errs, errors.New("output is required"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = multierr.Append(errs, fmt.Errorf("invalid log.level: %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = multierr.Append(errs, fmt.Errorf("invalid log.format: %q", c.Log.Format))
	}
	for name, id := range c.External {
		if name == "" || id == "" {
			errs = multierr.Append(errs, fmt.Errorf("external entry %q -> %q must name both the type and its identity", name, id))
		}
	}
	for name, path := range c.Imports {
		if name == "" || path == "" {
			errs = multierr.Append(errs, fmt.Errorf("imports entry %q -> %q must name both the qualifier and the path", name, path))
		}
	}
	return errs
}
